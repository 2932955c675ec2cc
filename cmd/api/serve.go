package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/config"
	dbpkg "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/db"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/logger"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/routes"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/validators"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe o servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db, log); err != nil {
		return err
	}

	if err := validators.Register(); err != nil {
		return err
	}

	// --------------------------------------------------
	// Auditoria: banco sempre, Redis quando configurado
	// --------------------------------------------------
	sinks := []audit.Sink{audit.New(db)}
	if cfg.RedisURL != "" {
		client, err := audit.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, audit events stay local")
		} else {
			defer client.Close()
			sinks = append(sinks, audit.NewPublisher(client, audit.DefaultChannel))
		}
	}
	dispatcher := audit.NewDispatcher(log, cfg.AuditQueueSize, sinks...)
	defer dispatcher.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, cfg, log, dispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
