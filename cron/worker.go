package cron

import (
	"context"
	"log"
	"time"

	"barberbook/config"
	barberRepo "barberbook/database/repository/barber"
	"barberbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeTrialExpire = "trial:expire"

// Lapsed trials are demoted once a day, shortly after midnight UTC.
const trialSweepSchedule = "15 0 * * *"

// InitTrialSweeper runs the async worker and its daily schedule in the
// background. The sweep demotes every account whose premium trial has
// lapsed; the admin API can trigger the same operation on demand.
func InitTrialSweeper(barbers barberRepo.BarberRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTrialExpire, handleTrialExpireTask(barbers))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register(trialSweepSchedule, asynq.NewTask(TypeTrialExpire, nil)); err != nil {
		log.Fatalf("[TrialSweeper] failed to register schedule: %v", err)
	}

	go func() {
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TrialSweeper] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					log.Fatal("[TrialSweeper] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[TrialSweeper] scheduler stopped: %v", err)
		}
	}()
}

func handleTrialExpireTask(barbers barberRepo.BarberRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		count, err := barbers.ExpireTrials(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("trial sweep failed", zap.Error(err))
			return err
		}
		if count > 0 {
			logger.Info("trial sweep demoted lapsed accounts", zap.Int64("count", count))
		}
		return nil
	}
}
