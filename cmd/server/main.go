package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"rentacar/internal/api"
	"rentacar/internal/auth"
	"rentacar/internal/booking"
	"rentacar/internal/repository"
	"rentacar/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	reservationRepo := repository.NewReservationRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	eventRepo := repository.NewEventRepository(db)
	renterRepo := repository.NewRenterRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)

	pricing := service.NewPricingService(vehicleRepo)
	sender := service.NewSenderService()
	stripeSvc := service.NewStripeService(os.Getenv("STRIPE_SECRET_KEY"))
	sink := service.NewNotifySink(eventRepo, renterRepo, sender, stripeSvc, reservationRepo)
	defer sink.Close()

	svc := service.NewReservationService(reservationRepo, vehicleRepo, pricing, sink)
	if err := svc.LoadIndex(); err != nil {
		log.Fatalf("Failed to load availability index: %v", err)
	}

	authSvc := service.NewAuthService(operatorRepo)
	jobSvc := service.NewJobService(svc, reservationRepo)

	c := cron.New()
	c.AddFunc("@hourly", func() {
		if err := jobSvc.CompleteFinishedReservations(); err != nil {
			log.Printf("Cron Job: completion sweep failed: %v", err)
		}
	})
	c.AddFunc("@hourly", func() {
		if err := jobSvc.CancelStalePendingReservations(); err != nil {
			log.Printf("Cron Job: stale pending sweep failed: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	bookingHandler := api.NewBookingHandler(svc)
	adminHandler := api.NewAdminHandler(svc, eventRepo)
	authHandler := api.NewAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/admin/login", authHandler.Login).Methods("POST")

	// Renter endpoints (authenticated)
	user := r.PathPrefix("/api").Subrouter()
	user.Use(auth.Middleware)
	user.HandleFunc("/availability", bookingHandler.CheckAvailability).Methods("POST")
	user.HandleFunc("/reservations", bookingHandler.CreateReservation).Methods("POST")
	user.HandleFunc("/reservations", bookingHandler.ListMyReservations).Methods("GET")
	user.HandleFunc("/reservations/{id}", bookingHandler.GetReservation).Methods("GET")
	user.HandleFunc("/reservations/{id}", bookingHandler.CancelReservation).Methods("DELETE")

	// Operator endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware, auth.RequireRole(booking.RoleOperator))
	admin.HandleFunc("/vehicles/{vehicle_id}/reservations", adminHandler.ListVehicleReservations).Methods("GET")
	admin.HandleFunc("/reservations/{id}/status", adminHandler.UpdateReservationStatus).Methods("PUT")
	admin.HandleFunc("/reservations/{id}/events", adminHandler.ListReservationEvents).Methods("GET")

	origins := strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",")
	if len(origins) == 1 && origins[0] == "" {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
