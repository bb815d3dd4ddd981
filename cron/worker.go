package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"medibook/config"
	"medibook/services/booking"
	"medibook/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitCompletionWorker runs the async worker in background. It drives the
// Booked-to-Completed transition after each appointment's slot has passed.
func InitCompletionWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentComplete, handleCompletionTask(bookingSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[CompletionWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CompletionWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CompletionWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCompletionTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.CompletionPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CompletionHandler] Invalid payload: %v", err)
			return err
		}

		_, err := bookingSvc.Complete(p.AppointmentID)
		if err != nil {
			switch booking.CodeOf(err) {
			case booking.CodeInvalidTransition, booking.CodeNotFound:
				// Cancelled (or otherwise finished) before the slot ended.
				log.Printf("[CompletionHandler] Skipping %s: %v", p.AppointmentID, err)
				return nil
			default:
				log.Printf("[CompletionHandler] Failed to complete %s: %v", p.AppointmentID, err)
				return err
			}
		}

		log.Printf("[CompletionHandler] Appointment %s completed", p.AppointmentID)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CompletionWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
