package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"siteserve/core/browser"
	"siteserve/core/config"
	"siteserve/core/logger"
	"siteserve/core/server"
	"siteserve/core/storage"
	"siteserve/core/webroot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Serve the public/ directory and open a browser",
	Long: `Resolves the public/ directory next to the executable, serves its
contents over HTTP, and opens the default browser at the serving URL
shortly after startup.`,
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

		// 3. Validate the port. An explicit non-numeric PORT aborts
		// startup instead of silently falling back to the default.
		if err := cfg.Server.Validate(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}

		// 4. Resolve the webroot before touching the network.
		root := cfg.Server.Root
		if root == "" {
			root, err = webroot.Resolve()
		} else {
			root, err = webroot.Ensure(root)
		}
		if err != nil {
			logg.Fatal("Webroot validation failed", zap.Error(err))
		}

		// Serve relative to the webroot.
		if err := os.Chdir(root); err != nil {
			logg.Fatal("Could not enter webroot", zap.Error(err))
		}

		// 5. Optional content pull before serving.
		if cfg.Storage.Enabled {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			if err := storage.Pull(cmd.Context(), store, cfg.Storage, root, logg); err != nil {
				logg.Fatal("Content pull failed", zap.Error(err))
			}
		}

		// 6. Build the HTTP app and start serving.
		app := server.NewApp(root, logg)

		go func() {
			logg.Info("Server running",
				zap.String("url", cfg.Server.URL()),
				zap.String("root", root),
			)
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Best-effort browser tab once the listener has had a moment.
		opener := browser.NewOpener(cfg.Browser, logg)
		opener.ScheduleOpen(cfg.Server.URL())

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
