package edge

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const empresaKey = "edge_empresa"

// Resolver maps a plaintext API token to its company.
type Resolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// ErrorBody is the edge error shape.
// swagger:model EdgeError
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

// token reads "Authorization: Bearer vw_..." or the X-API-Key header.
func token(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return strings.TrimSpace(c.GetHeader("X-API-Key"))
}

// RequireToken authenticates the edge routes. unauthorized is the error
// the resolver returns for bad tokens; anything else is a 500.
func RequireToken(r Resolver, unauthorized error, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := token(c)
		if tok == "" {
			Fail(c, http.StatusUnauthorized, "missing api token")
			return
		}
		empresaID, err := r.Resolve(c.Request.Context(), tok)
		if err != nil {
			if errors.Is(err, unauthorized) {
				Fail(c, http.StatusUnauthorized, "invalid or expired api token")
				return
			}
			log.Error("token resolve failed", zap.Error(err))
			Fail(c, http.StatusInternalServerError, "internal error")
			return
		}
		c.Set(empresaKey, empresaID)
		c.Next()
	}
}

// EmpresaID returns the company bound by RequireToken.
func EmpresaID(c *gin.Context) string { return c.GetString(empresaKey) }

// WithEmpresa binds a company without a token, for handler tests.
func WithEmpresa(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(empresaKey, id)
		c.Next()
	}
}

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Limit reads ?limit= with the edge defaults.
func Limit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// MethodNotAllowed answers verbs the edge resources do not support.
func MethodNotAllowed(c *gin.Context) {
	Fail(c, http.StatusMethodNotAllowed, "method not allowed")
}
