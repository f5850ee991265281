// Package config provides configuration management for siteserve.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded via godotenv when present).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, host, serving root)
//   - Browser: post-startup browser launch (enabled, delay)
//   - Storage: optional S3/MinIO content pull
//   - Log: logging level and format
//
// Defaults come from `default:` struct tags, walked reflectively so
// every key is registered with Viper before AutomaticEnv kicks in.
// The server port additionally binds the bare PORT environment
// variable, which takes precedence over SERVER_PORT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
