package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iamasit07/connect-four/internal/service/game"
)

var _ game.CacheRepository = (*RedisCache)(nil)

func TestNewClientUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Port 1 on loopback is never a Redis server.
	client, err := NewClient(ctx, "127.0.0.1:1", "")
	assert.Error(t, err)
	assert.Nil(t, client)
}
