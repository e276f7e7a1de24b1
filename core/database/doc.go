// Package database handles the optional upload ledger connection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based
// on the application's configuration. The blob feature records every successful
// upload when a connection is available; the service runs without it otherwise.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
