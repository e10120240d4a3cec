package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	"github.com/BruksfildServices01/client-registry/internal/config"
	"github.com/BruksfildServices01/client-registry/internal/handlers"
	"github.com/BruksfildServices01/client-registry/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/client-registry/internal/infra/repository"
	"github.com/BruksfildServices01/client-registry/internal/metrics"
	"github.com/BruksfildServices01/client-registry/internal/middleware"
	"github.com/BruksfildServices01/client-registry/internal/service"
	"github.com/BruksfildServices01/client-registry/internal/timezone"
	ucClient "github.com/BruksfildServices01/client-registry/internal/usecase/client"
	"github.com/BruksfildServices01/client-registry/internal/validators"
)

type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Audit   *audit.Dispatcher
}

// NewEngine monta o gin com middlewares globais, health, métricas e a API.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		httpresp.OK(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	clientValidator := validators.NewClientValidator(timezone.Clock(d.Config.Timezone))

	// ======================================================
	// 🧠 USE CASES — CLIENTS
	// ======================================================
	clientService := service.NewClientService(service.UseCases{
		List:      ucClient.NewListClients(clientRepo, clientValidator),
		Get:       ucClient.NewGetClient(clientRepo),
		Create:    ucClient.NewCreateClient(clientRepo, clientValidator, d.Audit),
		Update:    ucClient.NewUpdateClient(clientRepo, clientValidator, d.Audit),
		SetStatus: ucClient.NewSetClientStatus(clientRepo, d.Audit),
		Delete:    ucClient.NewDeleteClient(clientRepo, clientValidator, d.Audit),
	}, d.Metrics)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(clientService, clientValidator, d.Config.DefaultPageSize)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.NewReader(d.DB))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.POST("", clientHandler.Create)
			clients.GET("/:id", clientHandler.Get)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
			clients.POST("/:id/enable", clientHandler.Enable)
			clients.POST("/:id/disable", clientHandler.Disable)
		}

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
