package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"halachi-backend/controllers"
	"halachi-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every public and admin route. Admin routes sit behind
// the credential gate built from creds.
func SetupRouter(
	site *controllers.SiteController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	tc *controllers.TourController,
	rvc *controllers.ReviewController,
	bc *controllers.BookingController,
	gc *controllers.GuestController,
	nc *controllers.NoteController,
	ac *controllers.AnalyticsController,
	creds middleware.CredentialSource,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Password", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public site
		api.GET("/data", site.GetData)
		api.GET("/hotel", hc.GetHotel)
		api.GET("/rooms", rc.GetRooms)
		api.GET("/tours", tc.GetTours)
		api.GET("/categories", tc.GetCategories)
		api.GET("/reviews", rvc.GetReviews)
		api.POST("/reviews", rvc.CreateReview)
		api.POST("/booking", bc.CreateBooking)
		api.POST("/analytics/pageview", ac.RecordPageView)

		// Admin back-office
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(creds))
		{
			admin.POST("/hotel", hc.UpdateHotel)
			admin.POST("/visitor-count", hc.SetVisitorCount)

			admin.POST("/rooms", rc.UpsertRoom)
			admin.DELETE("/rooms/:id", rc.DeleteRoom)

			admin.POST("/tours", tc.UpsertTour)
			admin.DELETE("/tours/:id", tc.DeleteTour)
			admin.POST("/categories", tc.UpsertCategory)

			admin.PUT("/reviews/:id/approve", rvc.ApproveReview)
			admin.PUT("/reviews/:id/reject", rvc.RejectReview)

			admin.GET("/bookings", bc.GetBookings)

			guests := admin.Group("/guests")
			{
				guests.GET("", gc.GetGuests)

				// literal segment must be registered before /:id
				guests.GET("/stats/summary", gc.GetGuestStats)

				guests.POST("", gc.CreateGuest)
				guests.PUT("/:id", gc.UpdateGuest)
				guests.PUT("/:id/checkout", gc.CheckoutGuest)
				guests.DELETE("/:id", gc.DeleteGuest)
			}

			admin.GET("/notes", nc.GetNotes)
			admin.POST("/notes", nc.CreateNote)
			admin.PUT("/notes/:id", nc.UpdateNote)
			admin.DELETE("/notes/:id", nc.DeleteNote)

			admin.GET("/analytics", ac.GetAnalytics)

			admin.POST("/upload", controllers.UploadImage)
		}
	}

	return r
}
