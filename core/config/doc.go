// Package config provides configuration management for the blob integration service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: the storage connection string and client settings
//   - Log: Logging level and format
//   - Database: optional upload ledger connection details
//
// Environment variables map to nested keys by replacing "." with "_", so
// STORAGE_CONNECTION_STRING sets storage.connection_string.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mgr, err := container.New(cfg.Storage.ConnectionString)
package config
