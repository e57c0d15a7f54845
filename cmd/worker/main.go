package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"classtrack/internal/attendance"
	"classtrack/internal/config"
	"classtrack/internal/queue"
	"classtrack/internal/store"
)

var (
	batchesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classtrack_worker_batches_processed_total",
		Help: "Submission batches persisted by the worker.",
	})
	batchesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classtrack_worker_batches_failed_total",
		Help: "Submission batches the worker could not persist or decode.",
	})
)

// Worker consumes submission batches from the queue and persists them with
// upsert semantics, so replays and double-submits converge on one row per
// (lecture, student, day).
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, cfg.QueueKey)
	}

	svc := attendance.NewService(attendance.NewRepository(db.Client), q)

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for messages...")
	for msg := range messages {
		if msg.Type != attendance.MsgSubmission {
			continue
		}

		var subs []attendance.Submission
		if err := json.Unmarshal(msg.Body, &subs); err != nil {
			log.Printf("bad submission payload: %v", err)
			batchesFailed.Inc()
			continue
		}

		if err := svc.Persist(ctx, subs); err != nil {
			log.Printf("persist batch of %d failed: %v", len(subs), err)
			batchesFailed.Inc()
			continue
		}

		batchesProcessed.Inc()
		log.Printf("persisted batch of %d marks", len(subs))
	}

	log.Println("worker stopped")
}
