package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/itskavin/Forex-Market-Hours/handlers"
)

// RegisterMarketRoutes registers the dashboard computation endpoints.
func RegisterMarketRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/market")
	{
		api.GET("/snapshot", hb.Market.SnapshotHandler)
		api.GET("/sessions", hb.Market.SessionsHandler)
		api.GET("/timeline", hb.Market.TimelineHandler)
		api.GET("/volume", hb.Market.VolumeHandler)
		api.GET("/scrub", hb.Market.ScrubHandler)
		api.GET("/stream", hb.Stream.FrameStreamHandler)
	}
}

// RegisterPreferenceRoutes registers the preference endpoints.
func RegisterPreferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/preferences")
	{
		api.GET("", hb.Preferences.GetPreferencesHandler)
		api.PUT("", hb.Preferences.SetPreferencesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", hb.Dashboard.PageHandler)
	RegisterMarketRoutes(r, hb)
	RegisterPreferenceRoutes(r, hb)
	RegisterHealthRoute(r)
}
