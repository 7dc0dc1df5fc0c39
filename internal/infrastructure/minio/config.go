package minio

// ClientConfig holds the connection coordinates of the S3-compatible backend.
// Endpoint and credentials are filled from the environment.
type ClientConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string `yaml:"region"`
}

// Config is shared by every storage operation.
type Config struct {
	Bucket  string
	Timeout int64 `yaml:"timeout_in_ms"`
}
