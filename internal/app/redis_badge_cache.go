/**
 * @description
 * Redis-backed cache for the sidebar's unread-inquiry badge. The refresh job
 * writes the count every tick; handlers read it without touching Postgres.
 */
package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	badgeKey = "leasely:badge:new_inquiries"
	// badgeTTL outlives two refresh ticks so a single missed tick does not
	// blank the badge.
	badgeTTL = 90 * time.Second
)

// RedisBadgeCache implements BadgeCache using Redis.
type RedisBadgeCache struct {
	client redis.UniversalClient
}

func NewRedisBadgeCache(client redis.UniversalClient) *RedisBadgeCache {
	return &RedisBadgeCache{client: client}
}

func (c *RedisBadgeCache) SetNewInquiryCount(ctx context.Context, count int) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, badgeKey, count, badgeTTL).Err()
}

func (c *RedisBadgeCache) GetNewInquiryCount(ctx context.Context) (int, bool, error) {
	if c == nil || c.client == nil {
		return 0, false, nil
	}
	raw, err := c.client.Get(ctx, badgeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}
