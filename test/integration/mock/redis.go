package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client connected to an embedded Redis shared by the
// whole test run.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		redisConn = openRedisConn()
	})
	return redisConn
}

func openRedisConn() *redis.Client {
	mini, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{Addr: mini.Addr()})
}

// ClearRedis flushes all keys, including rate limiter counters.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
