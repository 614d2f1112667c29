package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NITHINPOLI04/VMEW/internal/auth"
	"github.com/NITHINPOLI04/VMEW/internal/cache"
	"github.com/NITHINPOLI04/VMEW/internal/config"
	"github.com/NITHINPOLI04/VMEW/internal/database"
	"github.com/NITHINPOLI04/VMEW/internal/db"
	"github.com/NITHINPOLI04/VMEW/internal/handlers"
	"github.com/NITHINPOLI04/VMEW/internal/health"
	vmewhttp "github.com/NITHINPOLI04/VMEW/internal/http"
	"github.com/NITHINPOLI04/VMEW/internal/middleware"
	"github.com/NITHINPOLI04/VMEW/internal/repositories"
	"github.com/NITHINPOLI04/VMEW/internal/services"
	"github.com/NITHINPOLI04/VMEW/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool, migrations.FS)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := cache.Init(cfg); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	} else {
		log.Println("[Cache] Redis connected")
	}

	jwtManager := auth.NewJWTManager(cfg)

	userRepo := repositories.NewUserRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	templateRepo := repositories.NewTemplateRepository(pool)

	userService := services.NewUserService(userRepo, jwtManager)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	templateService := services.NewTemplateService(templateRepo)
	dashboardService := services.NewDashboardService(invoiceService)
	pdfService := services.NewPDFService(invoiceService, templateService)
	exportService := services.NewExportService(inventoryService)

	healthChecker := health.NewHealthChecker(pool)

	h := vmewhttp.Handlers{
		Auth:      handlers.NewAuthHandler(userService),
		Invoice:   handlers.NewInvoiceHandler(invoiceService, pdfService),
		Inventory: handlers.NewInventoryHandler(inventoryService, exportService),
		Template:  handlers.NewTemplateHandler(templateService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Utils:     handlers.NewUtilsHandler(),
		System:    handlers.NewSystemHandler(),
		Health:    handlers.NewHealthHandler(healthChecker),
	}

	authMW := middleware.NewAuthMiddleware(jwtManager, userRepo)
	router := vmewhttp.NewRouter(h, authMW)

	corsHandler := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsHandler(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("[Server] Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Server] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[Server] Forced shutdown: %v", err)
	}
	log.Println("[Server] Stopped")
}
