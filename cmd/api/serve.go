package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"livestock-registry/internal/adapters/auth/jwt"
	"livestock-registry/internal/platform/httpclient"
	"livestock-registry/internal/platform/metrics"
	"livestock-registry/internal/ports/auth"
	"livestock-registry/internal/router"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca el servidor HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer syncLogger(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := router.OpenRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	pub, closePub, err := router.OpenPublisher(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closePub() }()

	aiPorts, err := router.OpenAI(ctx, cfg, httpclient.New(cfg.Gemini.Timeout+10*time.Second, log), log)
	if err != nil {
		return err
	}

	// sin verifier => modo dev (X-Debug-User-ID)
	var verifier auth.AuthVerifier
	if v, err := jwt.NewVerifier(cfg.JWT.Secret, cfg.JWT.Issuer); err == nil {
		verifier = v
	} else {
		log.Warn("jwt secret not set, running in dev auth mode", nil)
	}

	handler := router.NewRouter(router.Options{
		Config:       cfg,
		Logger:       log,
		AuthVerifier: verifier,
		Repo:         repo,
		Publisher:    pub,
		Identifier:   aiPorts.Identifier,
		Detector:     aiPorts.Detector,
		Chat:         aiPorts.Chat,
		Metrics:      metrics.New(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		// la sumisión del dueño espera a la IA
		WriteTimeout: cfg.Gemini.Timeout + 30*time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
