package storage

// Config holds the object storage connection used by s3:// locations.
// The bucket is part of each location, not of the configuration.
type Config struct {
	// Endpoint is the host (and optional port) of the S3 compatible service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey authenticates requests.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey authenticates requests.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL switches the client to HTTPS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region of the buckets, empty for MinIO.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
