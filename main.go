package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	httpLayer "financing-calculator/http"
	"financing-calculator/mail"
	"financing-calculator/repository"
	"financing-calculator/service"
)

const cacheTTL = 1 * time.Hour

func main() {
	var clientRepo repository.ClientRepository
	var conditionRepo repository.ConditionRepository

	clientRepo = repository.NewClientRepositoryMemory()
	conditionRepo = repository.NewConditionRepositoryMemory()

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		defer db.Close()
		clientRepo = repository.NewClientRepositoryPostgres(db)
		conditionRepo = repository.NewConditionRepositoryPostgres(db)
		log.Println("Usando maestro de clientes y condiciones en PostgreSQL")
	}

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr, cacheTTL)
		log.Printf("Usando caché Redis en %s", addr)
	} else {
		cache = repository.NewMockCache()
	}

	geographyRepo := repository.NewGeographyRepositoryMemory()
	calculationRepo := repository.NewCalculationRepositoryMemory()

	creditDeptAddr := envOr("CREDIT_DEPT_EMAIL", "creditos@empresa.es")
	crmAddr := envOr("CRM_EMAIL", "crm@empresa.es")

	existingClientService := service.NewExistingClientService(clientRepo, calculationRepo, cache)
	existingClientHandler := httpLayer.NewExistingClientHandler(existingClientService)

	newClientService := service.NewNewClientService(geographyRepo, calculationRepo, cache)
	newClientHandler := httpLayer.NewNewClientHandler(newClientService)

	projectService := service.NewProjectService(conditionRepo, calculationRepo)
	projectHandler := httpLayer.NewProjectHandler(projectService)

	notificationService := service.NewNotificationService(
		mail.NewConsoleSender(), geographyRepo, creditDeptAddr, crmAddr)
	notificationHandler := httpLayer.NewNotificationHandler(notificationService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/financing/existing-client",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(existingClientHandler.Calculate),
		),
	)

	mux.Handle(
		"/financing/new-client",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(newClientHandler.Calculate),
		),
	)

	mux.Handle(
		"/financing/project",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(projectHandler.Calculate),
		),
	)

	mux.HandleFunc("/financing/notify", notificationHandler.Notify)
	mux.HandleFunc("/clients", existingClientHandler.LookupClient)
	mux.HandleFunc("/catalog/geography", newClientHandler.GeographyCatalog)
	mux.HandleFunc("/catalog/conditions", projectHandler.Conditions)

	port := envOr("PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Calculadora de financiación en http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
