package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

// FeedPublisher pushes feed items onto a per-sport stream for live consumers.
type FeedPublisher struct {
	client *redis.Client
	keys   keys
	maxLen int64
}

func NewFeedPublisher(client *redis.Client, prefix string, maxLen int64) *FeedPublisher {
	return &FeedPublisher{client: client, keys: keys{prefix}, maxLen: maxLen}
}

// StreamKey names the stream for a sport.
func (p *FeedPublisher) StreamKey(sportID string) string {
	return p.keys.join("feed", sportID)
}

func (p *FeedPublisher) PublishFeedItem(ctx context.Context, sportID string, item model.FeedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshaling feed item: %w", err)
	}
	args := &redis.XAddArgs{
		Stream: p.StreamKey(sportID),
		Values: map[string]interface{}{
			"data":     string(data),
			"match_id": item.MatchID,
			"type":     item.Type,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}
	return p.client.XAdd(ctx, args).Err()
}

var _ repository.FeedPublisher = (*FeedPublisher)(nil)
