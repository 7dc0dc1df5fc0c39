package broker

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"guestlens/internal/domain/entity"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entity.UploadEvent) error {
	if p.client == nil || p.client.redis == nil {
		return errors.New("redis not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	args := &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"key":         event.Key,
			"type":        event.Type,
			"file_name":   event.FileName,
			"size":        strconv.FormatInt(event.Size, 10),
			"uploaded_at": event.UploadedAt.UTC().Format(time.RFC3339Nano),
		},
	}
	if p.client.maxLen > 0 {
		args.MaxLen = p.client.maxLen
		args.Approx = true
	}

	return p.client.redis.XAdd(ctx, args).Err()
}

// Disabled is used when no broker is configured.
type Disabled struct{}

func (Disabled) Publish(context.Context, entity.UploadEvent) error {
	return nil
}
