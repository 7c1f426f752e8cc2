package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"halachi-backend/config"
	"halachi-backend/controllers"
	"halachi-backend/routes"
	"halachi-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (embedded SQLite by default, MySQL via env)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}

	// Initialize services
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	tourService := services.NewTourService(db)
	reviewService := services.NewReviewService(db)
	bookingService := services.NewBookingService(db)
	guestService := services.NewGuestService(db)
	noteService := services.NewNoteService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Initialize controllers
	siteController := controllers.NewSiteController(hotelService, roomService, tourService, reviewService)
	hotelController := controllers.NewHotelController(hotelService)
	roomController := controllers.NewRoomController(roomService)
	tourController := controllers.NewTourController(tourService)
	reviewController := controllers.NewReviewController(reviewService)
	bookingController := controllers.NewBookingController(bookingService, analyticsService)
	guestController := controllers.NewGuestController(guestService)
	noteController := controllers.NewNoteController(noteService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	// Build router; the hotel service doubles as the admin credential source
	router := routes.SetupRouter(
		siteController,
		hotelController,
		roomController,
		tourController,
		reviewController,
		bookingController,
		guestController,
		noteController,
		analyticsController,
		hotelService,
	)

	// Port from env (prefer), fallback to 3000
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🏨 Halachi server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
