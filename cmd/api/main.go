package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/database"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/http/handlers"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/http/middleware"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/mail"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/storage"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/ws"
	"github.com/purva-galani/Everest-main-live-sub001/internal/usecase"
)

func main() {
	godotenv.Load()

	client, err := database.NewMongoConnection(envOr("MONGODB_URI", "mongodb://localhost:27017"))
	if err != nil {
		log.Fatalf("mongodb connection failed: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(envOr("MONGO_DB", "everest"))
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	store, err := storage.NewLocalStorage(envOr("UPLOAD_DIR", "uploads"))
	if err != nil {
		log.Fatalf("upload dir unavailable: %v", err)
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	dealRepo := database.NewDealRepository(db)
	invoiceRepo := database.NewInvoiceRepository(db)
	accountRepo := database.NewAccountRepository(db)
	contactRepo := database.NewContactRepository(db)
	complaintRepo := database.NewComplaintRepository(db)
	taskRepo := database.NewTaskRepository(db)
	scheduledRepo := database.NewScheduledEventRepository(db)
	calendarRepo := database.NewCalendarEventRepository(db)
	notificationRepo := database.NewNotificationRepository(db)
	userRepo := database.NewUserRepository(db)
	fileRepo := database.NewFileRepository(db)

	// Realtime hub
	hub := ws.NewHub(notificationRepo)
	go hub.Run()

	// UseCases
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@everest.local"), envOr("BASE_URL", "http://localhost:8080"),
	)
	sessions := usecase.NewSessionStore(7 * 24 * time.Hour)
	authUC := usecase.NewAuthUseCase(userRepo, mailSender, sessions)
	searchUC := usecase.NewSearchUseCase(
		leadRepo, dealRepo, invoiceRepo, accountRepo,
		contactRepo, complaintRepo, taskRepo, scheduledRepo,
	)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(envOr("CORS_ORIGINS", "http://localhost:3000"), ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api/v1/lead", handlers.NewLeadHandler(leadRepo).Register)
	r.Route("/api/v1/deal", handlers.NewDealHandler(dealRepo).Register)
	r.Route("/api/v1/invoice", handlers.NewInvoiceHandler(invoiceRepo).Register)
	r.Route("/api/v1/account", handlers.NewAccountHandler(accountRepo).Register)
	r.Route("/api/v1/contact", handlers.NewContactHandler(contactRepo).Register)
	r.Route("/api/v1/complaint", handlers.NewComplaintHandler(complaintRepo).Register)
	r.Route("/api/v1/task", handlers.NewTaskHandler(taskRepo).Register)
	r.Route("/api/v1/scheduledEvents", handlers.NewScheduledEventHandler(scheduledRepo).Register)
	r.Route("/api/v1/calendar", handlers.NewCalendarHandler(calendarRepo).Register)
	r.Route("/api/v1/notification", handlers.NewNotificationHandler(notificationRepo, hub).Register)
	r.Route("/api/v1/owner", handlers.NewOwnerHandler(authUC).Register)
	r.Route("/api/v1/file", handlers.NewFileHandler(fileRepo, store).Register)

	r.Get("/api/v1/search", handlers.NewSearchHandler(searchUC).Handle)
	r.Get("/ws", ws.ServeWS(hub))
	r.Get("/health", handlers.NewHealthHandler(client, hub).Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Static serving of uploaded files
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.Dir))))

	port := ":" + envOr("PORT", "8080")
	log.Printf("Everest CRM backend listening on %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
