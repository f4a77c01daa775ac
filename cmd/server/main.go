package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/config"
	"pizzeria-backend/internal/database"
	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/services/catalog"
	"pizzeria-backend/internal/services/contact"
	"pizzeria-backend/internal/services/order"
	"pizzeria-backend/internal/services/reservation"
	"pizzeria-backend/internal/services/user"
	"pizzeria-backend/internal/web"
)

func main() {
	var (
		port       = flag.Int("port", 0, "HTTP port (overrides PORT env)")
		migrations = flag.String("migrations", "migrations", "Path to the migrations directory")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	log := logger.New("restaurant-api")
	requestID := logger.GenerateRequestID()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	if err := run(ctx, cfg, log, *migrations); err != nil {
		log.Error("service_failed", "Restaurant API failed", requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, migrationsPath string) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, migrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	router := mux.NewRouter()
	router.Use(web.RequestLogger(log))
	router.HandleFunc("/health", web.Health(db)).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	catalogSvc := catalog.NewService(catalog.NewPostgresStore(db))
	catalog.NewHandler(catalogSvc, log).Register(api)

	orderSvc := order.NewService(order.NewPostgresStore(db))
	order.NewHandler(orderSvc, log).Register(api)

	reservationSvc := reservation.NewService(reservation.NewPostgresStore(db))
	reservation.NewHandler(reservationSvc, log).Register(api)

	userSvc := user.NewService(user.NewPostgresStore(db))
	user.NewHandler(userSvc, log).Register(api)

	contactSvc := contact.NewService(contact.NewPostgresStore(db))
	contact.NewHandler(contactSvc, log).Register(api)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("service_started", fmt.Sprintf("Restaurant API started on port %d", cfg.Server.Port), requestID, map[string]any{
			"port": cfg.Server.Port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}
