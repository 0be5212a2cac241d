package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"peer-tutor-scheduler/internal/domain/user"
	"peer-tutor-scheduler/internal/handler/api"
	reqdto "peer-tutor-scheduler/internal/handler/dto/request"
	"peer-tutor-scheduler/internal/handler/middleware"
	"peer-tutor-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Slots        *api.SlotHandler
	Bookings     *api.BookingHandler
	HelpRequests *api.HelpRequestHandler
}

func NewHandlers(slots *api.SlotHandler, bookings *api.BookingHandler, helpRequests *api.HelpRequestHandler) Handlers {
	return Handlers{Slots: slots, Bookings: bookings, HelpRequests: helpRequests}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.Timeout(cfg.Schedule.OperationTimeout))
	apiGroup.Use(authMiddleware.RequireAuth())

	tutorOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleTutor, user.RoleAdmin)}

	{
		addRoutes(apiGroup.Group("/slots"), []route{
			{Method: http.MethodPut, Path: "", Handler: h.Slots.Publish, Mw: tutorOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Slots.Delete, Mw: tutorOnly},
		})
		addRoutes(apiGroup.Group("/tutors"), []route{
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Slots.ListByTutor},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.BookDirectly},
			{Method: http.MethodPost, Path: "/manual", Handler: h.Bookings.CreateManual},
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Bookings.Transition},
		})

		addRoutes(apiGroup.Group("/help-requests"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.HelpRequests.Post},
			{Method: http.MethodGet, Path: "", Handler: h.HelpRequests.ListOpen},
			{Method: http.MethodGet, Path: "/mine", Handler: h.HelpRequests.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: h.HelpRequests.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.HelpRequests.Withdraw},
			{Method: http.MethodPost, Path: "/:id/claim", Handler: h.HelpRequests.Claim, Mw: tutorOnly},
			{Method: http.MethodPost, Path: "/:id/resolve", Handler: h.HelpRequests.Resolve},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
