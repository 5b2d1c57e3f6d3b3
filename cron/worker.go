package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nutrify/config"
	"nutrify/models"
	"nutrify/services/notification"

	"github.com/hibiken/asynq"
)

// NewReminderQueueClient returns the asynq client used to enqueue reminder
// tasks.
func NewReminderQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		reservation := &models.Reservation{
			ID:        p.ReservationID,
			UserEmail: p.UserEmail,
			UserName:  p.UserName,
			Date:      p.Date,
			Time:      p.Time,
			Service:   p.Service,
		}

		if err := notifSvc.SendReservationReminder(ctx, reservation); err != nil {
			log.Printf("[ReminderWorker] reminder for %s failed: %v", p.ReservationID, err)
			return err
		}
		return nil
	}
}
