package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"touringplaces/handlers"
)

// RegisterSearchRoutes registers the search aggregation endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.POST("/flights", hb.SearchFlights)
		api.POST("/stays", hb.SearchStays)
		api.POST("/tours", hb.SearchTours)
	}
}

// RegisterEmailRoutes registers transactional email endpoints.
func RegisterEmailRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/email/send", hb.SendEmail)
		api.POST("/enquiries", hb.SubmitEnquiry)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Touring Places"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// CORS is permissive: browsers call these endpoints directly from the
// marketing site, and preflight OPTIONS gets headers with no body.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterSearchRoutes(r, hb)
	RegisterEmailRoutes(r, hb)
	RegisterHealthRoute(r)
}
