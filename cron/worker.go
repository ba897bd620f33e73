package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"taskhive/config"
	requestRepo "taskhive/database/repository/request"
	"taskhive/models"
	"taskhive/services/lifecycle"
	"taskhive/services/matching"
	"taskhive/services/notification"

	"github.com/hibiken/asynq"
)

const (
	TypeRequestFanout      = "request:fanout"
	TypeLifecycleReconcile = "lifecycle:reconcile"
)

// FanoutPayload is the task payload for new-request notification fan-out.
type FanoutPayload struct {
	RequestID string `json:"requestId"`
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitWorker runs the async worker in background.
func InitWorker(
	matchSvc matching.MatchingService,
	reqRepo requestRepo.RequestRepository,
	notifSvc notification.NotificationService,
	lifecycleSvc lifecycle.LifecycleService,
) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRequestFanout, handleRequestFanout(matchSvc, reqRepo, notifSvc))
	mux.HandleFunc(TypeLifecycleReconcile, handleReconcile(lifecycleSvc))

	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go scheduleReconcile()
}

// handleRequestFanout recomputes the eligible recipient set for the request
// and dispatches one new-request notification per provider. The recipient
// computation is a pure filter, so asynq retries of this task are safe.
func handleRequestFanout(
	matchSvc matching.MatchingService,
	reqRepo requestRepo.RequestRepository,
	notifSvc notification.NotificationService,
) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p FanoutPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[Fanout] invalid payload: %v", err)
			return err
		}

		req, err := reqRepo.GetByID(ctx, p.RequestID)
		if err != nil {
			return fmt.Errorf("fanout: failed to load request %s: %w", p.RequestID, err)
		}
		if req.Status != models.RequestOpen {
			log.Printf("[Fanout] request %s no longer open, skipping", p.RequestID)
			return nil
		}

		recipients, err := matchSvc.FindEligibleRecipients(ctx, *req)
		if err != nil {
			return fmt.Errorf("fanout: failed to compute recipients for %s: %w", p.RequestID, err)
		}

		for _, providerID := range recipients {
			err := notifSvc.Send(ctx, providerID, notification.RoleProvider, models.NotificationNewRequest,
				"New request in your category",
				fmt.Sprintf("%q is looking for a provider near you.", req.Title),
				map[string]string{"requestId": req.ID, "categoryId": req.CategoryID})
			if err != nil {
				log.Printf("[Fanout] failed to notify provider %s: %v", providerID, err)
			}
		}
		log.Printf("[Fanout] request %s fanned out to %d providers", req.ID, len(recipients))
		return nil
	}
}

// handleReconcile repairs stray pending proposals left by partially failed
// acceptance runs.
func handleReconcile(lifecycleSvc lifecycle.LifecycleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		repaired, err := lifecycleSvc.ReconcileStrayProposals(ctx)
		if err != nil {
			return err
		}
		if repaired > 0 {
			log.Printf("[Reconcile] repaired %d stray proposals", repaired)
		}
		return nil
	}
}

// scheduleReconcile enqueues the reconciliation sweep on a fixed interval.
func scheduleReconcile() {
	interval := time.Duration(config.AppConfig.ReconcileIntervalMin) * time.Minute
	if interval <= 0 {
		log.Println("[Reconcile] sweep disabled by configuration")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := enqueue(asynq.NewTask(TypeLifecycleReconcile, nil)); err != nil {
			log.Printf("[Reconcile] failed to enqueue sweep: %v", err)
		}
	}
}
