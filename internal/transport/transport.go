package transport

import (
	"html/template"
	"net/http"
	"time"

	"github.com/ajiang05/vibeCheck/internal/metrics"
	"github.com/ajiang05/vibeCheck/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type Options struct {
	Templates      *template.Template
	Authenticator  middleware.Authenticator
	CookieName     string
	RequestTimeout time.Duration
	Metrics        *metrics.Metrics
	// MetricsPath and MetricsHandler expose the collectors; a nil handler
	// leaves the route out.
	MetricsPath    string
	MetricsHandler http.Handler
}

func InitRoutes(opts Options, eventHandler *EventHandler, profileHandler *ProfileHandler, pageHandler *PageHandler) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(opts.Metrics))
	router.Use(middleware.Timeout(opts.RequestTimeout))
	router.Use(middleware.Auth(opts.Authenticator, opts.CookieName))

	if opts.Templates != nil {
		router.SetHTMLTemplate(opts.Templates)
	}

	// Web interface routes
	router.GET("/", pageHandler.Index)
	router.GET("/search", pageHandler.Search)
	router.GET("/map", pageHandler.Map)
	router.GET("/profile", pageHandler.Profile)
	router.GET("/auth", pageHandler.Auth)
	router.POST("/signout", pageHandler.SignOut)

	// API routes
	api := router.Group("/api/v1")
	{
		events := api.Group("/events")
		{
			events.GET("", eventHandler.GetAllEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("/refresh", eventHandler.RefreshEvents)
		}

		api.GET("/navigation", eventHandler.GetNavigation)
		api.GET("/profile", profileHandler.GetProfile)
		api.POST("/auth/signout", profileHandler.SignOut)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		router.GET(opts.MetricsPath, gin.WrapH(opts.MetricsHandler))
	}

	return router
}
