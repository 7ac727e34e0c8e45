// Package cache provides Valkey (Redis-compatible) client initialization,
// the L2 API response cache, and the in-process category group cache.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClientName identifies API connections in CLIENT LIST.
const ClientName = "besinrehberi-api"

// ConnectValkey creates a Valkey client for the response cache and verifies
// it with a ping. Timeouts are short because a slow cache must degrade to a
// miss rather than stall the request; the caller runs without a cache when
// this returns an error.
func ConnectValkey(host, port, password string, db int) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		ClientName:   ClientName,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping %s: %w", addr, err)
	}

	slog.Info("valkey connected", "addr", addr, "db", db)
	return client, nil
}
