package apphttp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/handlers"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/mailer"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/orders"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/products"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/purchaseorders"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/stats"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/suppliers"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/tickets"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/users"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/sms"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/storage"
)

type Deps struct {
	Config      config.Config
	Logger      *slog.Logger
	DB          *gorm.DB
	Storage     storage.Storage
	Mailer      mailer.Service
	SMSProvider sms.Provider
	Stats       *stats.Service
}

func NewRouter(d Deps) *gin.Engine {
	if d.Config.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	httpMetrics := middleware.NewHTTPMetrics(reg)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		httpMetrics.Handler(),
		middleware.ErrorHandler(d.Logger),
	)

	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	userRepo := users.NewRepo(d.DB)
	orderRepo := orders.NewRepo(d.DB)
	poRepo := purchaseorders.NewRepo(d.DB)
	supplierRepo := suppliers.NewRepo(d.DB)
	productRepo := products.NewRepo(d.DB)
	ticketRepo := tickets.NewRepo(d.DB)

	authH := handlers.NewAuthHandler(userRepo, d.Config)
	usersH := handlers.NewUsersHandler(userRepo, d.Storage)
	ordersH := handlers.NewOrdersHandler(orderRepo, orders.NewService(orderRepo), d.Config.Currency)
	posH := handlers.NewPurchaseOrdersHandler(poRepo, purchaseorders.NewService(poRepo))
	suppliersH := handlers.NewSuppliersHandler(supplierRepo)
	productsH := handlers.NewProductsHandler(productRepo, products.NewImageService(productRepo, d.Storage))
	ticketsH := handlers.NewTicketsHandler(ticketRepo,
		tickets.NewService(ticketRepo, d.Mailer, d.Config.SendGrid.FromEmail, d.Logger))
	dashboardH := handlers.NewDashboardHandler(d.Stats)
	campaignH := handlers.NewCampaignHandler(
		sms.NewCampaignService(userRepo, d.SMSProvider, d.DB, d.Logger))
	mailCfgH := handlers.NewMailConfigHandler(d.Config.SendGrid)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authH.Login)

		// kept method-scoped and auth-free like the serverless originals;
		// other verbs hit the NoMethod 405
		api.GET("/check-sendgrid-config", mailCfgH.Check)
		api.POST("/send-sms-campaign", campaignH.Send)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(d.Config.JWTSecret))
	{
		authed.GET("/users/me", usersH.Me)
		authed.POST("/users/me/avatar", usersH.UploadAvatar)
	}

	admin := authed.Group("")
	admin.Use(middleware.RequireEmployee())
	{
		admin.GET("/orders", ordersH.List)
		admin.POST("/orders", ordersH.Create)
		admin.GET("/orders/:id", ordersH.Detail)
		admin.PUT("/orders/:id/status", ordersH.SetStatus)

		admin.GET("/purchase-orders", posH.List)
		admin.POST("/purchase-orders", posH.Create)
		admin.GET("/purchase-orders/:id", posH.Detail)
		admin.PUT("/purchase-orders/:id", posH.Update)
		admin.POST("/purchase-orders/:id/cycle-status", posH.CycleStatus)

		admin.GET("/suppliers", suppliersH.List)
		admin.POST("/suppliers", suppliersH.Create)
		admin.GET("/suppliers/:id", suppliersH.Detail)
		admin.PUT("/suppliers/:id", suppliersH.Update)

		admin.GET("/products", productsH.List)
		admin.POST("/products", productsH.Create)
		admin.PUT("/products/:id", productsH.Update)
		admin.DELETE("/products/:id", productsH.Delete)
		admin.POST("/products/:id/image", productsH.UploadImage)

		admin.GET("/tickets", ticketsH.List)
		admin.POST("/tickets", ticketsH.Create)
		admin.GET("/tickets/:id", ticketsH.Detail)
		admin.PUT("/tickets/:id/status", ticketsH.SetStatus)
		admin.POST("/tickets/:id/resolve", ticketsH.Resolve)
		admin.POST("/tickets/:id/activities", ticketsH.AddActivity)

		admin.GET("/users", usersH.List)
		admin.POST("/users", usersH.Upsert)
		admin.PUT("/users/:id", usersH.Update)

		admin.GET("/dashboard/stats", dashboardH.Stats)
	}

	return r
}
