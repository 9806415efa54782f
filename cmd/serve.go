package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"ai_site_builder/config"
	"ai_site_builder/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP backend",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		log.Printf("Cannot load config: %v", err)
		return err
	}

	apiHandler := api.NewAPIHandler(newGenerator(cfg), api.Options{
		SettleDelay:  cfg.EditorSettleDelay,
		HistoryLimit: cfg.EditorHistoryLimit,
		Sessions: api.SessionOptions{
			IdleTTL:     cfg.SessionIdleTTL,
			MaxSessions: cfg.MaxSessions,
		},
	})
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go apiHandler.SweepSessions(sweepCtx, sweepInterval(cfg.SessionIdleTTL))

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	origins := api.NewOriginList(cfg.CORSAllowedOrigins)
	config.Watch(func(updated config.Config) {
		origins.Set(updated.CORSAllowedOrigins)
		log.Printf("CORS origins updated: %v", updated.CORSAllowedOrigins)
	})

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(api.CORS(origins))

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GenerationTimeout + 30*time.Second, // a generation may take most of the timeout
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Closing editor sessions...")
	stopSweep()
	apiHandler.Shutdown()

	log.Println("Application exiting.")
	return nil
}

// sweepInterval checks for idle sessions a few times per TTL, at most once a
// minute apart.
func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval < time.Second && ttl > 0 {
		interval = time.Second
	}
	return interval
}
