package config

import (
	"errors"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"guestlens/internal/infrastructure/broker"
	"guestlens/internal/infrastructure/minio"
	"guestlens/pkg/logger"
)

const (
	EnvEndpoint   = "S3_ENDPOINT"
	EnvAccessKey  = "AWS_ACCESS_KEY_ID"
	EnvSecretKey  = "AWS_SECRET_ACCESS_KEY" //nolint
	EnvBucketName = "S3_BUCKET_NAME"
	EnvRegion     = "AWS_REGION"
	EnvBrokerURI  = "BROKER_URI"

	prodEnvironment = "prod"
)

// envFiles are loaded in this order; variables already set win.
var envFiles = []string{".env.local", ".env"}

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	HTTP            HTTPConfig             `yaml:"http"`
	Gallery         GalleryConfig          `yaml:"gallery"`
	LegacyUpload    LegacyUploadConfig     `yaml:"legacy_upload"`
	Download        DownloadConfig         `yaml:"download"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIO           minio.Config           `yaml:"minio"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`

	// PublicBaseURL prefixes generated media URLs. Empty keeps them relative.
	PublicBaseURL string `yaml:"public_base_url"`
}

type HTTPConfig struct {
	BodyLimit string `yaml:"body_limit"`

	// RateLimit is opt-in; zero leaves the APIs unlimited.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`

	// ShutdownTimeout is in seconds.
	ShutdownTimeout int `yaml:"shutdown_timeout_in_sec"`
}

type GalleryConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

type LegacyUploadConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Mode      string `yaml:"mode"`
	MaxSize   int64  `yaml:"max_size_in_mb"`
	ExpirySec int    `yaml:"expiry_in_sec"`
}

type DownloadConfig struct {
	OutDir             string `yaml:"out_dir"`
	Concurrency        int    `yaml:"concurrency"`
	ConfirmAbove       int    `yaml:"confirm_above"`
	ProgressEveryFiles int    `yaml:"progress_every_files"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != prodEnvironment {
		if err := loadEnvFiles(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.Endpoint = os.Getenv(EnvEndpoint)
	config.MinIOClient.AccessKey = os.Getenv(EnvAccessKey)
	config.MinIOClient.SecretKey = os.Getenv(EnvSecretKey)
	config.MinIO.Bucket = os.Getenv(EnvBucketName)
	if region := os.Getenv(EnvRegion); region != "" {
		config.MinIOClient.Region = region
	}
	config.BrokerConfig.URI = os.Getenv(EnvBrokerURI)

	config.setDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func loadEnvFiles() error {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Default.Address == "" {
		c.Default.Address = ":3000"
	}
	if c.HTTP.BodyLimit == "" {
		c.HTTP.BodyLimit = "100M"
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 10
	}
	if c.Gallery.DefaultLimit <= 0 {
		c.Gallery.DefaultLimit = 20
	}
	if c.Gallery.MaxLimit <= 0 {
		c.Gallery.MaxLimit = 100
	}
	if c.LegacyUpload.Mode == "" {
		c.LegacyUpload.Mode = "post"
	}
	if c.LegacyUpload.MaxSize <= 0 {
		c.LegacyUpload.MaxSize = 50
	}
	if c.LegacyUpload.ExpirySec <= 0 {
		c.LegacyUpload.ExpirySec = 600
	}
	if c.Download.OutDir == "" {
		c.Download.OutDir = "downloads/originals"
	}
	if c.Download.Concurrency <= 0 {
		c.Download.Concurrency = 8
	}
	if c.Download.ConfirmAbove <= 0 {
		c.Download.ConfirmAbove = 1000
	}
	if c.Download.ProgressEveryFiles <= 0 {
		c.Download.ProgressEveryFiles = 50
	}
	if c.MinIO.Timeout <= 0 {
		c.MinIO.Timeout = 30000
	}
	if c.PublisherConfig.Timeout <= 0 {
		c.PublisherConfig.Timeout = 2000
	}
	if c.BrokerConfig.StreamName == "" {
		c.BrokerConfig.StreamName = "guestlens:uploads"
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	var missing []string
	for name, value := range map[string]string{
		EnvEndpoint:   c.MinIOClient.Endpoint,
		EnvAccessKey:  c.MinIOClient.AccessKey,
		EnvSecretKey:  c.MinIOClient.SecretKey,
		EnvBucketName: c.MinIO.Bucket,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return errors.New("missing required environment variables: " + strings.Join(missing, ", "))
	}

	if c.Gallery.DefaultLimit > c.Gallery.MaxLimit {
		return errors.New("gallery.default_limit must not exceed gallery.max_limit")
	}
	if m := c.LegacyUpload.Mode; m != "put" && m != "post" {
		return errors.New("legacy_upload.mode must be put or post")
	}

	return nil
}
