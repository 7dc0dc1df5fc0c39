package broker

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	redis  *redis.Client
	stream string
	group  string
	maxLen int64
}

// NewClient connects to redis and makes sure the stream exists. When a group
// name is configured the consumer group is created too, so consumers started
// later still see every event.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, errors.New("broker uri is required")
	}

	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, err
	}

	if cfg.GroupName != "" {
		err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "$").Err()
		if err != nil && !isBusyGroup(err) {
			_ = rdb.Close()

			return nil, err
		}
	}

	return &Client{
		redis:  rdb,
		stream: cfg.StreamName,
		group:  cfg.GroupName,
		maxLen: cfg.MaxLen,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && err.Error() == "BUSYGROUP Consumer Group name already exists"
}
