// Package config provides configuration management for the master-reference tool.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults are declared next to each setting through
// `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Reference: input locations, output location and the fallback text encoding
//   - Storage: S3/MinIO credentials for s3:// locations
//   - Database: MySQL connection details for db:// locations
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Reference.Output)
package config
