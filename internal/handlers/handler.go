package handlers

import (
	"runwalk_timer/internal/logger"
	"runwalk_timer/internal/notify"
	"runwalk_timer/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	hub      *notify.Hub
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. hub may be
// nil when no push channel is served.
func NewHandler(services *service.Service, hub *notify.Hub, log *logger.Logger) *Handler {
	return &Handler{services: services, hub: hub, log: logger.OrNop(log)}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Display push channel on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerTimerRoutes(api)
		h.registerSettingsRoutes(api)
		h.registerRunLogRoutes(api)
		h.registerEventRoutes(api)
	}
}

func (h *Handler) registerTimerRoutes(api *gin.RouterGroup) {
	timer := api.Group("/timer")
	{
		timer.GET("/state", h.getTimerState)
		timer.POST("/start", h.startTimer)
		timer.POST("/pause", h.pauseTimer)
		timer.POST("/reset", h.resetTimer)
		timer.POST("/toggle", h.toggleTimer)
	}
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")
	{
		settings.GET("", h.getSettings)
		// Body example: {"value":"90"}
		settings.PUT("/:field", h.updateSetting)
	}
}

func (h *Handler) registerRunLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/runlogs")
	{
		logs.GET("/summary", h.getRunLogSummary)
		logs.GET("/:date", h.getRunLog)
		// Body example: {"minutes":"25","distance":"5,2","gym":false}
		logs.PUT("/:date", h.upsertRunLog)
		logs.DELETE("/:date", h.deleteRunLog)
	}
	api.GET("/calendar/:year/:month", h.getCalendar)
}

func (h *Handler) registerEventRoutes(api *gin.RouterGroup) {
	api.GET("/events", h.getEvents)
}
