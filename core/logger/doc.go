// Package logger builds the zap loggers used across the service.
//
// New reads the log section of the configuration (log.level, log.format, or
// LOG_LEVEL and LOG_FORMAT in the environment). The debug level switches to
// zap's development preset; json is the default encoding and console is meant
// for the CLI.
//
// Components receive a named child of the root logger:
//
//	storage            credential resolution (providers.Resolver)
//	storage.s3         S3 and MinIO backend
//	storage.azureblob  Azure Blob Storage backend
//
// Request-scoped code calls WithRayID to tag entries with the RayID that the
// rayid middleware stored on the Fiber context:
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	l := logger.WithRayID(log.Named("blob"), c)
//	l.Error("Save blob failed", zap.Error(err))
package logger
