package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hireflow/config"
	"hireflow/models"
	"hireflow/services/notification"
	"hireflow/services/tasks"
	"hireflow/utils"

	"github.com/hibiken/asynq"
)

// InitDeliveryWorker runs the async delivery worker in background.
func InitDeliveryWorker(mailer notification.MailerService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeOutreachEmailDeliver, handleOutreachEmailTask(mailer))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[DeliveryWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DeliveryWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DeliveryWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleOutreachEmailTask(mailer notification.MailerService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.OutreachEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[OutreachDelivery] Invalid payload: %v", err)
			return err
		}

		log.Printf("[OutreachDelivery] Delivering email for session %s to %s: %s", p.SessionID, p.Email.RecipientEmail, p.Email.Subject)

		if err := mailer.DeliverOutreachEmail(ctx, p); err != nil {
			log.Printf("[OutreachDelivery] Failed to deliver email: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := utils.GetQueueRedisClient()

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[DeliveryWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
