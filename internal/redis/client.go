package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pos_manager/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client caches hot catalog reads so order building does not hit the
// database for every menu lookup.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func menuItemKey(id uint) string {
	return fmt.Sprintf("menu_item:%d", id)
}

func (c *Client) SetMenuItem(item *models.MenuItem, ttl time.Duration) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal menu item: %w", err)
	}
	return c.rdb.Set(context.Background(), menuItemKey(item.ID), data, ttl).Err()
}

func (c *Client) GetMenuItem(id uint) (*models.MenuItem, error) {
	val, err := c.rdb.Get(context.Background(), menuItemKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("menu item not cached")
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	var item models.MenuItem
	if err := json.Unmarshal([]byte(val), &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu item: %w", err)
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(id uint) error {
	return c.rdb.Del(context.Background(), menuItemKey(id)).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
