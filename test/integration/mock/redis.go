package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisClient *redis.Client

// NewRedis returns a shared client backed by an in-process miniredis server.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisClient = redis.NewClient(&redis.Options{
			Addr: server.Addr(),
		})
	})
	return redisClient
}

// ClearRedis flushes all keys from the test Redis instance.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
