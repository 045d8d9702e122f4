//	@title			IconHub API
//	@version		1.0
//	@description	Icon blob store with a derived JSON manifest and an on-demand thumbnail cache.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/iconhub/service/internal/catalog"
	"github.com/iconhub/service/internal/config"
	"github.com/iconhub/service/internal/icon"
	"github.com/iconhub/service/internal/keys"
	appMiddleware "github.com/iconhub/service/internal/middleware"
	"github.com/iconhub/service/internal/resize"
	"github.com/iconhub/service/internal/storage"
	"github.com/iconhub/service/internal/task"
	"github.com/iconhub/service/internal/thumb"

	_ "github.com/iconhub/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewMinioStore(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.PublicBase,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	allowed := keys.NewExtSet(cfg.AllowedExtensions...)
	runner := task.NewRunner()

	// Wire dependencies: builder/store → service → handler
	builder := catalog.NewBuilder(store, cfg.ManifestKey, allowed, cfg.ListPageSize, cfg.ListMaxPages)
	catStore := catalog.NewStore(store, cfg.ManifestKey, cfg.CatalogTitle, cfg.CatalogDescription)
	iconSvc := icon.NewService(store, builder, catStore, allowed)
	iconHandler := icon.NewHandler(iconSvc)
	fileHandler := icon.NewFileHandler(store, cfg.ManifestKey)

	thumbCache, err := thumb.NewCache(cfg.ThumbCacheSize)
	if err != nil {
		log.Fatalf("thumbnail cache init failed: %v", err)
	}
	thumbSvc := thumb.NewService(store, resize.NewImagingResizer(), thumbCache, runner)
	thumbHandler := thumb.NewHandler(thumbSvc)

	// Mutations leave thumbnails of the touched key stale; purge them.
	iconSvc.SetInvalidator(func(key string) { thumbSvc.PurgeSource(key) })

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(appMiddleware.Gzip)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         86400,
	}))

	// Non-preflight OPTIONS probes get an empty 204; the cors middleware has
	// already attached the permissive headers.
	r.MethodFunc(http.MethodOptions, "/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/api/icons", iconHandler.Mutate)
	r.Delete("/api/icons", iconHandler.Remove)
	r.Get("/thumb", thumbHandler.Render)

	// Pass-through front door: raw objects and the manifest itself.
	r.Get("/*", fileHandler.Serve)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	// Responses may have been flushed with their cache writes still pending;
	// those must finish before the process exits.
	runner.Wait()

	log.Println("server stopped")
}
