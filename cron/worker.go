package cron

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"turfbook/config"
	"turfbook/services/records"
	"turfbook/utils"
)

const TypeArchiveRecords = "records:archive"

// archiveCron runs the nightly copy of settled bookings into the analytics
// archive, shortly after midnight UTC.
const archiveCron = "15 0 * * *"

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// StartWorker launches the background task server and its scheduler. The
// returned function stops both.
func StartWorker(svc records.RecordService) func() {
	logger := utils.GetLogger()

	srv := asynq.NewServer(redisOpt(), asynq.Config{
		Concurrency: 2,
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeArchiveRecords, func(ctx context.Context, t *asynq.Task) error {
		n, err := svc.ArchivePast(ctx, time.Now())
		if err != nil {
			logger.Error("archive task failed", zap.Error(err))
			return err
		}
		logger.Info("archive task finished", zap.Int("archived", n))
		return nil
	})

	scheduler := asynq.NewScheduler(redisOpt(), &asynq.SchedulerOpts{
		Location: time.UTC,
	})
	if _, err := scheduler.Register(archiveCron, asynq.NewTask(TypeArchiveRecords, nil)); err != nil {
		logger.Fatal("failed to register archive schedule", zap.Error(err))
	}

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Fatal("task server stopped", zap.Error(err))
		}
	}()
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Fatal("task scheduler stopped", zap.Error(err))
		}
	}()

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}
}
