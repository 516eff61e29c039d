package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/config"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/logger"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/router"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/feature/analysis"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/feature/auth"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/feature/system"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/feature/training"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/docs/swagger"
)

// @title AthleteAI Platform API
// @version 1.0
// @description Demo API for the AthleteAI platform. All endpoints return canned, in-memory data.
// @host localhost:8000
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AthleteAI platform server",
	Long:  `Starts the HTTP server, serving the SPA assets and the demo API endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the Fiber app with all middleware and features wired
		app, err := router.New(cfg, logg,
			system.NewFeature(logg),
			auth.NewFeature(logg),
			training.NewFeature(logg),
			analysis.NewFeature(logg),
		)
		if err != nil {
			logg.Fatal("Failed to build router", zap.Error(err))
		}

		// 4. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("static_root", cfg.Server.StaticRoot),
			)
			logg.Info("Demo credentials available via 'athleteai accounts'")
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				// Covers address-in-use: diagnostic + non-zero exit
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 5. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
