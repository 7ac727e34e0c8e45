// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, responseKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, os.Getenv("VALKEY_PASSWORD"), 15)
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	if got := client.Options().DB; got != 15 {
		t.Errorf("DB: got %d, want 15", got)
	}
	name, err := client.ClientGetName(context.Background()).Result()
	if err != nil {
		t.Fatalf("CLIENT GETNAME: %v", err)
	}
	if name != ClientName {
		t.Errorf("client name: got %q, want %q", name, ClientName)
	}

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestResponseCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	data, ok := rc.Get(ctx, "/api/foods/elma")
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	body := []byte(`{"food":{"name":"Elma"}}`)
	rc.Set(ctx, "/api/foods/elma", body)

	// Hit.
	data, ok = rc.Get(ctx, "/api/foods/elma")
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(body) {
		t.Errorf("data mismatch: got %q, want %q", data, body)
	}
}

func TestResponseCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, 1*time.Minute)

	ctx := context.Background()

	keys := []string{"/api/foods", "/api/random?count=6", "/api/category-groups"}
	for _, k := range keys {
		rc.Set(ctx, k, []byte("x"))
	}

	rc.InvalidateAll(ctx)

	for _, k := range keys {
		if _, ok := rc.Get(ctx, k); ok {
			t.Errorf("expected miss for %q after InvalidateAll", k)
		}
	}
}

func TestResponseCacheDisabled(t *testing.T) {
	rc := NewResponseCache(nil, 0)
	ctx := context.Background()

	if rc.Enabled() {
		t.Error("cache with nil client should report disabled")
	}

	// None of these may panic.
	rc.Set(ctx, "k", []byte("v"))
	if _, ok := rc.Get(ctx, "k"); ok {
		t.Error("disabled cache should never hit")
	}
	rc.InvalidateAll(ctx)

	var nilCache *ResponseCache
	if nilCache.Enabled() {
		t.Error("nil *ResponseCache should report disabled")
	}
}

func TestNewResponseCacheDefaultTTL(t *testing.T) {
	rc := NewResponseCache(nil, 0)
	if rc.ttl != DefaultResponseTTL {
		t.Errorf("expected DefaultResponseTTL (%v), got %v", DefaultResponseTTL, rc.ttl)
	}
}

func TestRequestKey(t *testing.T) {
	tests := []struct {
		path  string
		query url.Values
		want  string
	}{
		{"/api/foods/elma", nil, "/api/foods/elma"},
		{"/api/foods", url.Values{"page": {"2"}, "limit": {"24"}}, "/api/foods?limit=24&page=2"},
		{"/api/foods/search", url.Values{"q": {"süt"}}, "/api/foods/search?q=s%C3%BCt"},
	}
	for _, tt := range tests {
		if got := RequestKey(tt.path, tt.query); got != tt.want {
			t.Errorf("RequestKey(%q, %v) = %q, want %q", tt.path, tt.query, got, tt.want)
		}
	}
}
