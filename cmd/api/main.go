package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/config"
	"pet-adoption-api/internal/router"
)

// @title Pet Adoption API
// @version 1.0
// @description API de gestión de adopción de mascotas: usuarios, mascotas, adopciones, estadísticas y datos mock.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		// sin config todavía no hay logger configurado
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Logger: log, BcryptCost: cfg.BcryptCost}
	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("db open failed", map[string]any{"error": err})
			os.Exit(1)
		}
		defer db.Close()

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Error("ensure schema failed", map[string]any{"error": err})
			os.Exit(1)
		}
		opts.DB = db
		log.Info("using postgres store", nil)
	} else {
		log.Info("using in-memory store", nil)
	}

	app := router.New(opts)

	if cfg.SeedOnStart {
		res, err := app.Seeder.Run(ctx)
		if err != nil {
			log.Error("seed on start failed", map[string]any{"error": err})
		} else {
			log.Info("seed on start", map[string]any{
				"users":     res.InsertedUsers,
				"pets":      res.InsertedPets,
				"adoptions": res.InsertedAdoptions,
				"fallback":  res.Fallback,
			})
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
