// Package redis opens go-redis clients for the Redis-backed binary cache.
//
// Open parses a redis:// or rediss:// URL, applies pool and timeout settings,
// and pings the server with a bounded number of retries before returning:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//		redis.WithPoolSize(8),
//		redis.WithRetry(5, 500*time.Millisecond),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	cells := filecache.NewBinary[Snapshot](filecache.NewRedisBackend(client))
package redis
