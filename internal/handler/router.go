package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-admin-api/internal/handler/api"
	"rental-admin-api/internal/handler/middleware"
	"rental-admin-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Boat     *api.BoatHandler
	Scooter  *api.ScooterHandler
	Price    *api.PriceHandler
	Location *api.LocationHandler
	Contact  *api.ContactHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public surface: catalog reads and the contact form.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/boats", Handler: h.Boat.List},
			{Method: http.MethodGet, Path: "/scooters", Handler: h.Scooter.List},
			{Method: http.MethodGet, Path: "/prices", Handler: h.Price.List},
			{Method: http.MethodGet, Path: "/locations", Handler: h.Location.List},
			{Method: http.MethodPost, Path: "/contacts", Handler: h.Contact.Submit},
		})

		sessionRequired := apiGroup.Group("")
		sessionRequired.Use(authMiddleware.RequireSession())
		addRoutes(sessionRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			{Method: http.MethodPut, Path: "/boats", Handler: h.Boat.Update},
			{Method: http.MethodPut, Path: "/scooters", Handler: h.Scooter.Update},
			{Method: http.MethodPut, Path: "/prices", Handler: h.Price.Upsert},
			{Method: http.MethodPut, Path: "/locations", Handler: h.Location.Upsert},
			{Method: http.MethodPost, Path: "/locations", Handler: h.Location.Create},
			{Method: http.MethodDelete, Path: "/locations", Handler: h.Location.Delete},
			{Method: http.MethodGet, Path: "/contacts", Handler: h.Contact.List},
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
