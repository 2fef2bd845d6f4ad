package cron

import (
	"context"
	"log"
	"time"

	"urbanease/config"
	"urbanease/services/feed"

	"github.com/hibiken/asynq"
)

const TypeFeedRefresh = "feed:refresh"

// InitFeedRefreshWorker runs the async worker in background. It keeps the
// feed snapshot warm so browse requests rarely pay the upstream round trip.
func InitFeedRefreshWorker(feedSvc feed.FeedService) {
	interval := time.Duration(config.AppConfig.FeedRefreshMin) * time.Minute
	if interval <= 0 {
		log.Println("[FeedRefreshWorker] disabled, FEED_REFRESH_MIN is zero")
		return
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFeedRefresh, handleFeedRefreshTask(feedSvc))

	// Enqueue a refresh on every tick.
	go scheduleFeedRefresh(redisOpts, interval)

	// Start async worker with retry logic
	go func() {
		log.Println("[FeedRefreshWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FeedRefreshWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FeedRefreshWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleFeedRefreshTask(feedSvc feed.FeedService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := feedSvc.Refresh(ctx); err != nil {
			log.Printf("[FeedRefreshHandler] ❌ Failed to invalidate snapshot: %v", err)
			return err
		}

		// Warm the snapshot with a default browse so the next user hits cache.
		if _, err := feedSvc.Browse(ctx, feed.BrowseQuery{Criteria: feed.DefaultCriteria()}); err != nil {
			log.Printf("[FeedRefreshHandler] ⚠️ Failed to warm snapshot: %v", err)
			return err
		}
		return nil
	}
}

func scheduleFeedRefresh(redisOpts asynq.RedisClientOpt, interval time.Duration) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		task := asynq.NewTask(TypeFeedRefresh, nil)
		if _, err := client.Enqueue(task, asynq.MaxRetry(2)); err != nil {
			log.Printf("[FeedRefreshWorker] ⚠️ Failed to enqueue refresh: %v", err)
		}
	}
}
