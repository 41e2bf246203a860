package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"contact-relay/pkg/api"
	"contact-relay/pkg/clients/googlechat"
	"contact-relay/pkg/config"
	"contact-relay/pkg/localtime"
	"contact-relay/pkg/logging"
	"contact-relay/pkg/metrics"
	"contact-relay/pkg/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		port    string
	)

	cmd := &cobra.Command{
		Use:           "contact-relay",
		Short:         "Relay contact form submissions to a Google Chat space",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
				return err
			}
			return run(cmd.Context(), config.WithPort(port))
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func run(ctx context.Context, opts ...config.Option) error {
	// Initialize configuration
	cfg, err := config.LoadConfig(opts...)
	if err != nil {
		logging.Configure("info", nil)
		log.Error().Err(err).Msg("Configuration error")
		return err
	}
	logging.Configure(cfg.LogLevel, nil)

	webhookURL, err := config.TakeWebhookURL()
	if err != nil {
		log.Error().Err(err).Msg("Configuration error")
		return err
	}

	formatter, err := localtime.NewFormatter(cfg.Locale, cfg.TimeZone, cfg.DateStyle, cfg.TimeStyle)
	if err != nil {
		log.Error().Err(err).Msg("Configuration error")
		return err
	}

	// Initialize API clients and services
	chatClient := googlechat.NewClient(webhookURL)
	m := metrics.New()

	router := services.NewRouter(map[string]services.FormHandler{
		"contact": services.NewContactSubmissionHandler(services.NewCardBuilder(formatter), chatClient, m),
	}, m)

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(api.RequestLogger(), gin.Recovery())
	api.RegisterRoutes(engine, api.NewHandlers(router), m.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Error starting server")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
