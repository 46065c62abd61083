package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

const sessionKey = "session"

// BearerToken extracts the token from an "Authorization: Bearer <t>" header.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

func RequireSession(jwtSvc *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := BearerToken(c)
		if tok == "" {
			httpx.Fail(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		sess, err := jwtSvc.Parse(tok)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, ErrExpiredToken) {
				msg = "session expired"
			}
			httpx.Fail(c, http.StatusUnauthorized, msg)
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireRole must run after RequireSession.
func RequireRole(papel string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil || sess.Papel != papel {
			httpx.Fail(c, http.StatusForbidden, "forbidden")
			return
		}
		if papel == user.RoleEmpresa && sess.EmpresaID == "" {
			httpx.Fail(c, http.StatusForbidden, "no company bound to session")
			return
		}
		c.Next()
	}
}

// ActiveFunc reports whether a company may still use the portal.
type ActiveFunc func(ctx context.Context, empresaID string) (bool, error)

// RequireActiveCompany refuses company sessions issued before the company
// was deactivated. Sessions without a company pass through.
func RequireActiveCompany(active ActiveFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil || sess.EmpresaID == "" {
			c.Next()
			return
		}
		ok, err := active(c.Request.Context(), sess.EmpresaID)
		if err != nil {
			_ = c.Error(err)
			httpx.Fail(c, http.StatusInternalServerError, "internal error")
			return
		}
		if !ok {
			httpx.Fail(c, http.StatusUnauthorized, "company inactive")
			return
		}
		c.Next()
	}
}

func SessionFrom(c *gin.Context) *Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}

// WithSession preloads a session, for handler tests.
func WithSession(sess *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, sess)
		c.Next()
	}
}
