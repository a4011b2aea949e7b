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

	"hotel-receptionist/config"
	"hotel-receptionist/controllers"
	"hotel-receptionist/routes"
	"hotel-receptionist/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Required API key (fatal if missing)
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("❌ ERROR: OPENAI_API_KEY environment variable is not set. Cannot initialize the receptionist.")
	}
	log.Println("✅ OPENAI_API_KEY detected.")

	// Connect database (embedded SQLite by default, MySQL when configured)
	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established, schema migrated, inventory seeded.")

	// Initialize services
	roomService := services.NewRoomService(db)
	roomTypeService := services.NewRoomTypeService(db)
	reservationService := services.NewReservationService(db)
	bookingService := services.NewBookingService(db, roomService, reservationService)
	toolAdapter := services.NewToolAdapter(bookingService, roomService)
	chatService := services.NewChatService(apiKey, toolAdapter)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, bookingService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)
	bookingController := controllers.NewBookingController(bookingService)
	chatController := controllers.NewChatController(chatService)

	// Build router
	router := routes.SetupRouter(roomController, roomTypeController, bookingController, chatController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts; WriteTimeout is generous because a chat turn
		// waits on the language-model provider
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
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
