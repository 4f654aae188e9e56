package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"pickup-service/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info имя задачи для логов и метрик.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
}

// New прогревает задачи и запускает их периодическое выполнение.
//
//  1. Каждая задача один раз выполняется синхронно, ошибка или паника на этом шаге возвращается из New.
//  2. После прогрева задачи крутятся в фоне по своему TTL до отмены ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					TaskPanicsTotal.WithLabelValues(task.Info()).Inc()
					log.Error("task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(stack)),
					)
				}
			}()
			log.Info("initializing task",
				logger.NewField("task", task.Info()),
			)
			return worker.observe(initCtx, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.runBackgroundTask(ctx, task)
	}

	return worker, nil
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl.String()),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			TaskPanicsTotal.WithLabelValues(task.Info()).Inc()
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := w.observe(ctx, task); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}

func (w *Worker) observe(ctx context.Context, task Task) error {
	start := time.Now()
	err := task.Do(ctx)

	result := "ok"
	if err != nil {
		result = "error"
	}
	TaskRunDuration.WithLabelValues(task.Info(), result).Observe(time.Since(start).Seconds())

	return err
}
