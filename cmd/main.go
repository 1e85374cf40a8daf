package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"ecolife/internal/api"
	"ecolife/internal/archive"
	"ecolife/internal/catalog"
	"ecolife/internal/config"
	"ecolife/internal/database"
	"ecolife/internal/events"
	"ecolife/internal/metrics"
	"ecolife/internal/monitoring"
	"ecolife/internal/recommend"
	"ecolife/internal/session"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "ecolife",
	Short: "Preventive maintenance scheduler for the EcoLife sorting plant",
	Long: `ecolife tracks equipment hours, inspection findings and preventive
maintenance work orders for the two production lines of the sorting plant.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the maintenance API",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath, "Path to configuration file")
	rootCmd.AddCommand(serveCmd, scheduleCmd, archiveCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func ginMode(logLevel string) string {
	if logLevel == "debug" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// newArchive opens the configured archive database. When the database cannot
// be opened the service keeps running with an in-memory archive for the process lifetime.
func newArchive(cfg *config.Config) (*archive.Archive, func()) {
	var arch *archive.Archive
	closer := func() {}

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Printf("Archive database unavailable, keeping work orders in memory: %v", err)
		arch = archive.New(&archive.MemoryStore{})
	} else {
		arch = archive.New(archive.NewGormStore(db))
		closer = func() { database.Close(db) }
	}

	log.Printf("Loaded %d archived work orders", arch.Load())
	return arch, closer
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	gin.SetMode(ginMode(cfg.LogLevel))

	arch, closeArchive := newArchive(cfg)
	defer closeArchive()

	collector := metrics.NewCollector()
	monitor := monitoring.NewMonitor()
	hub := events.NewHub()

	recommender := recommend.NewService(initializeProvider(ctx, cfg.Recommendation),
		recommend.WithObserver(collector.RecommendationServed))

	sessions := session.NewManager(catalog.New(), arch, cfg.Scheduler.LookaheadHours,
		session.Observers{collector, monitor, hub})

	plantAPI := api.NewPlantAPI(sessions, recommender, monitor, hub, cfg.Auth.Secret)

	if cfg.Metrics.Enabled {
		go startMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path, collector)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: plantAPI.Router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
		cancel()
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("API server error: %w", err)
	}
	return nil
}

// initializeProvider returns nil when no credentials are configured
func initializeProvider(ctx context.Context, s recommend.Settings) recommend.Provider {
	provider, err := recommend.NewProvider(ctx, s)
	switch {
	case errors.Is(err, recommend.ErrNotConfigured):
		log.Printf("No credentials for %s, recommendations will use the manual fallback", s.Provider)
		return nil
	case err != nil:
		log.Printf("Failed to initialize %s recommendations: %v", s.Provider, err)
		return nil
	}
	log.Printf("Recommendations served by %s", provider.Name())
	return provider
}

func startMetricsServer(port int, path string, collector *metrics.Collector) {
	metricsRouter := gin.New()
	metricsRouter.GET(path, gin.WrapH(promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
