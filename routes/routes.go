package routes

import (
	"net/http"
	"time"

	"voyago/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the assembled handlers for route registration.
type HandlerBundle struct {
	Search     *handlers.SearchHandler
	Trip       *handlers.TripHandler
	Credential *handlers.CredentialHandler
	Booking    *handlers.BookingHandler
}

// RegisterSearchRoutes registers the domain fetch and typeahead endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.GET("/flights", hb.Search.Flights)
		api.GET("/hotels", hb.Search.Hotels)
		api.GET("/cars", hb.Search.Cars)
		api.GET("/packages", hb.Search.Packages)
		api.GET("/cities", hb.Search.Cities)
		api.GET("/cities/recent", hb.Search.RecentCities)
		api.POST("/cities/recent", hb.Search.RecordRecentCity)
		api.POST("/more/:domain", hb.Search.LoadMore)
	}
}

// RegisterTripRoutes registers trip session and checkout endpoints.
func RegisterTripRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/trip")
	{
		api.POST("/session", hb.Trip.CreateSession)
		api.GET("/session/:sessionID", hb.Trip.GetSession)
		api.PUT("/session/:sessionID/flight", hb.Trip.SelectFlight)
		api.PUT("/session/:sessionID/lodgings", hb.Trip.SetLodgings)
		api.POST("/session/:sessionID/lodgings", hb.Trip.AddLodging)
		api.DELETE("/session/:sessionID/lodgings/:lodgingID", hb.Trip.RemoveLodging)
		api.PUT("/session/:sessionID/preferences", hb.Trip.SetPreferences)
		api.GET("/session/:sessionID/total", hb.Trip.Total)
		api.POST("/session/:sessionID/checkout/begin", hb.Trip.BeginCheckout)
		api.POST("/session/:sessionID/checkout", hb.Trip.Checkout)
		api.POST("/session/:sessionID/reset", hb.Trip.Reset)
	}
}

// RegisterCredentialRoutes registers completion-key management endpoints.
func RegisterCredentialRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/credential")
	{
		api.POST("", hb.Credential.Store)
		api.DELETE("", hb.Credential.Remove)
		api.GET("/status", hb.Credential.Status)
		api.POST("/probe", hb.Credential.Probe)
	}
}

// RegisterBookingRoutes registers booking confirmation lookups.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.ListForSession)
		api.GET("/:bookingID", hb.Booking.GetByID)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Voyago"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", handlers.SessionIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSearchRoutes(r, hb)
	RegisterTripRoutes(r, hb)
	RegisterCredentialRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
