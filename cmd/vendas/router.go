package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MikeMC777/vendas-whatsapp/docs"
	"github.com/MikeMC777/vendas-whatsapp/internal/apitoken"
	"github.com/MikeMC777/vendas-whatsapp/internal/auth"
	"github.com/MikeMC777/vendas-whatsapp/internal/company"
	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/edge"
	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	"github.com/MikeMC777/vendas-whatsapp/internal/importer"
	"github.com/MikeMC777/vendas-whatsapp/internal/notification"
	ord "github.com/MikeMC777/vendas-whatsapp/internal/order"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
	prod "github.com/MikeMC777/vendas-whatsapp/internal/product"
	"github.com/MikeMC777/vendas-whatsapp/internal/storage"
	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

// pinger is satisfied by *pgxpool.Pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// app holds everything the HTTP layer needs.
type app struct {
	log         *zap.Logger
	db          pinger
	corsOrigins []string
	maxUpload   int64
	heartbeat   time.Duration

	jwt           *auth.JWTService
	users         *user.Service
	companies     company.Repository
	products      *prod.Service
	customers     *customer.Service
	orders        *ord.Service
	notifications *notification.Service
	tokens        *apitoken.Service
	payments      *payment.Service
	importer      *importer.Service
	uploader      *storage.Uploader
	files         *storage.Memory // nil when uploads go to S3
}

// StatusResponse is the body of the probes.
// swagger:model StatusResponse
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// healthHandler godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	StatusResponse
//	@Router		/healthz [get]
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// readyHandler godoc
//
//	@Summary	Readiness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	StatusResponse
//	@Failure	503	{object}	StatusResponse
//	@Router		/readyz [get]
func readyHandler(db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
	}
}

// edgeResource mounts GET/POST/PUT behind the token check and answers 405
// for the other verbs.
func edgeResource(r *gin.Engine, path string, token gin.HandlerFunc, get, post, put gin.HandlerFunc) {
	if get != nil {
		r.GET(path, token, get)
	}
	if post != nil {
		r.POST(path, token, post)
	}
	if put != nil {
		r.PUT(path, token, put)
	}
	for _, m := range []string{http.MethodDelete, http.MethodPatch, http.MethodHead} {
		r.Handle(m, path, edge.MethodNotAllowed)
	}
	if get == nil {
		r.GET(path, edge.MethodNotAllowed)
	}
	if put == nil {
		r.PUT(path, edge.MethodNotAllowed)
	}
}

func newRouter(a *app) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(a.log), httpx.Recovery(a.log), httpx.CORS(a.corsOrigins))

	r.GET("/healthz", healthHandler)
	r.GET("/readyz", readyHandler(a.db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if a.files != nil {
		r.GET("/arquivos/*key", memoryFileHandler(a.files))
	}

	session := auth.RequireSession(a.jwt)
	activeCompany := auth.RequireActiveCompany(companyActive(a.companies))

	r.POST("/auth/login", loginHandler(a.users, a.companies, a.jwt))
	r.GET("/auth/me", session, activeCompany, meHandler(a.users, a.companies))

	admin := r.Group("/admin", session, auth.RequireRole(user.RoleAdminMaster))
	{
		admin.GET("/stats", statsHandler(a.companies))
		admin.GET("/empresas", listCompaniesHandler(a.companies))
		admin.POST("/empresas", createCompanyHandler(a.companies))
		admin.GET("/empresas/:id", getCompanyHandler(a.companies))
		admin.PUT("/empresas/:id", updateCompanyHandler(a.companies))
		admin.DELETE("/empresas/:id", deactivateCompanyHandler(a.companies, a.tokens))
		admin.GET("/empresas/:id/usuarios", listCompanyUsersHandler(a.users))
		admin.POST("/empresas/:id/usuarios", createCompanyUserHandler(a.companies, a.users))
	}

	portal := r.Group("/portal", session, auth.RequireRole(user.RoleEmpresa), activeCompany)
	{
		portal.GET("/produtos", listOnlyHandler(a.products))
		portal.GET("/produtos/search", searchHandler(a.products))
		portal.GET("/produtos/exportar", exportProductsHandler(a.products))
		portal.POST("/produtos/importar", importProductsHandler(a.importer, a.maxUpload))
		portal.GET("/produtos/:id", getProductHandler(a.products))
		portal.POST("/produtos", createProductHandler(a.products))
		portal.PUT("/produtos/:id", updateProductHandler(a.products))
		portal.DELETE("/produtos/:id", deleteProductHandler(a.products))

		portal.GET("/pessoas", listCustomersHandler(a.customers))
		portal.GET("/pessoas/exportar", exportCustomersHandler(a.customers))
		portal.POST("/pessoas/importar", importCustomersHandler(a.importer, a.maxUpload))
		portal.GET("/pessoas/:id", getCustomerHandler(a.customers))
		portal.POST("/pessoas", createCustomerHandler(a.customers))
		portal.PUT("/pessoas/:id", updateCustomerHandler(a.customers))
		portal.DELETE("/pessoas/:id", deleteCustomerHandler(a.customers))

		portal.GET("/pedidos", listOrdersHandler(a.orders))
		portal.GET("/pedidos/exportar", exportOrdersHandler(a.orders))
		portal.POST("/pedidos", createOrderHandler(a.orders))
		portal.GET("/pedidos/:id", getOrderHandler(a.orders))
		portal.GET("/pedidos/:id/items", getOrderItemsHandler(a.orders))
		portal.GET("/pedidos/:id/pdf", orderPDFHandler(a.orders, a.companies))
		portal.PUT("/pedidos/:id/status", updateOrderStatusHandler(a.orders))

		portal.GET("/notificacoes", listNotificationsHandler(a.notifications))
		portal.GET("/notificacoes/contagem", countNotificationsHandler(a.notifications))
		portal.GET("/notificacoes/stream", streamNotificationsHandler(a.notifications, a.log, a.heartbeat))
		portal.PUT("/notificacoes/lidas", markAllReadHandler(a.notifications))
		portal.PUT("/notificacoes/:id/lida", markReadHandler(a.notifications))

		portal.GET("/api-tokens", listTokensHandler(a.tokens))
		portal.POST("/api-tokens", createTokenHandler(a.tokens))
		portal.DELETE("/api-tokens/:id", revokeTokenHandler(a.tokens))

		portal.GET("/pagamentos/configs", listPaymentConfigsHandler(a.payments))
		portal.PUT("/pagamentos/configs/:provedor", upsertPaymentConfigHandler(a.payments))
		portal.DELETE("/pagamentos/configs/:provedor", deletePaymentConfigHandler(a.payments))

		portal.POST("/uploads", uploadHandler(a.uploader, a.maxUpload))
	}

	token := edge.RequireToken(a.tokens, apitoken.ErrUnauthorized, a.log)
	edgeResource(r, "/api-v1-produtos", token,
		edgeListProductsHandler(a.products), edgeCreateProductsHandler(a.products), edgeUpsertProductsHandler(a.products))
	edgeResource(r, "/api-v1-pessoas", token,
		edgeListCustomersHandler(a.customers), edgeCreateCustomersHandler(a.customers), edgeUpsertCustomersHandler(a.customers))
	edgeResource(r, "/api-v1-pedidos", token,
		edgeListOrdersHandler(a.orders), edgeCreateOrdersHandler(a.orders, a.customers), edgeUpdateOrdersHandler(a.orders))
	edgeResource(r, "/webhook-pedidos", token, nil, whatsappOrderHandler(a.orders, a.customers), nil)
	edgeResource(r, "/webhook-pagamentos", token, nil, paymentWebhookHandler(a.orders, a.payments), nil)

	return r
}
