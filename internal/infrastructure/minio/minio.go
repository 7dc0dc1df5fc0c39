package minio

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	storage "guestlens/internal/domain/repository/minio"
	"guestlens/pkg/logger"
)

const defaultRegion = "auto"

type Client struct {
	MinioClient *minio.Client
}

func New(cfg ClientConfig) (*Client, error) {
	host, secure, err := parseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	logger.Info("connecting to object storage", "endpoint", host, "secure", secure, "region", region)

	client, err := minio.New(host, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       secure,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		logger.Error("failed to initialize storage client", "err", err)

		return nil, err
	}

	return &Client{MinioClient: client}, nil
}

// parseEndpoint accepts either a URL ("https://host[:port]") or a bare
// "host[:port]". Bare hosts are dialed without TLS.
func parseEndpoint(raw string) (string, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, errors.New("storage endpoint is required")
	}
	if !strings.Contains(raw, "://") {
		return strings.TrimSuffix(raw, "/"), false, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("invalid storage endpoint: %w", err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("invalid storage endpoint %q: missing host", raw)
	}
	if p := strings.Trim(u.Path, "/"); p != "" {
		return "", false, fmt.Errorf("invalid storage endpoint %q: path %q is not supported", raw, p)
	}

	switch u.Scheme {
	case "https":
		return u.Host, true, nil
	case "http":
		return u.Host, false, nil
	default:
		return "", false, fmt.Errorf("invalid storage endpoint %q: unsupported scheme %q", raw, u.Scheme)
	}
}

func timeout(cfg *Config) time.Duration {
	return time.Duration(cfg.Timeout) * time.Millisecond
}

// mapError turns a missing key into storage.ErrObjectNotFound.
func mapError(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", storage.ErrObjectNotFound, resp.Key)
	}

	return err
}
