package cmd

import (
	"fmt"
	"os"

	"siteserve/core/config"
	"siteserve/core/logger"
	"siteserve/core/webroot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect the webroot without serving it",
	Long:  `Resolves the webroot the same way 'start' does and reports what would be served: file and directory counts, total size, and whether an index.html entry point exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		runWebrootCheck()
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runWebrootCheck() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	root := cfg.Server.Root
	if root == "" {
		root, err = webroot.Resolve()
	} else {
		root, err = webroot.Ensure(root)
	}
	if err != nil {
		logg.Fatal("Webroot validation failed", zap.Error(err))
	}

	report, err := webroot.Inspect(root)
	if err != nil {
		logg.Fatal("Webroot inspection failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Webroot Report ---")
	fmt.Printf("Path:        %s\n", report.Path)
	fmt.Printf("Files:       %d\n", report.Files)
	fmt.Printf("Directories: %d\n", report.Dirs)
	fmt.Printf("Total size:  %d bytes\n", report.Bytes)

	status := "index.html found"
	statusColor := "\033[32m" // Green
	if !report.HasIndex {
		status = "index.html missing (directory listing will be served)"
		statusColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"
	fmt.Printf("Entry point: %s%s%s\n", statusColor, status, resetColor)
	fmt.Println("----------------------")
}
