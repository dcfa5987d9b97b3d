package task

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ErrQueueFull is returned by Submit when the in-memory queue has no room.
var ErrQueueFull = errors.New("task queue is full, try again later")

// RunnerConfig holds configuration for the task runner
type RunnerConfig struct {
	// WorkerCount determines how many concurrent workers process tasks
	WorkerCount int

	// QueueSize determines the buffer size for the in-memory task queue
	QueueSize int
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount: 2,
		QueueSize:   50,
	}
}

// Runner manages background task processing with an in-memory queue and a
// fixed worker pool. Task state lives in memory only; a restart drops
// queued work, which is acceptable for re-submittable jobs like imports.
type Runner struct {
	taskChan   chan Task
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	config     RunnerConfig
	logger     *slog.Logger

	mu       sync.RWMutex
	statuses map[uuid.UUID]TaskStatus
}

// NewRunner creates a new Runner. If logger is nil, a default logger is used.
func NewRunner(config RunnerConfig, logger *slog.Logger) *Runner {
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultRunnerConfig().WorkerCount
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultRunnerConfig().QueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		taskChan:   make(chan Task, config.QueueSize),
		ctx:        ctx,
		cancelFunc: cancel,
		config:     config,
		logger:     logger.With(slog.String("component", "task_runner")),
		statuses:   make(map[uuid.UUID]TaskStatus),
	}
}

// Submit adds a new task to the queue.
// Returns ErrQueueFull if the queue has no room.
func (r *Runner) Submit(task Task) error {
	select {
	case r.taskChan <- task:
		r.setStatus(task.ID(), TaskStatusPending)
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the worker pool.
func (r *Runner) Start() {
	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
}

// Stop gracefully shuts down the runner. Tasks still queued are dropped.
func (r *Runner) Stop() {
	r.cancelFunc()
	r.wg.Wait()
}

// StatusOf reports the last known status of a submitted task.
func (r *Runner) StatusOf(id uuid.UUID) (TaskStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	status, ok := r.statuses[id]
	return status, ok
}

func (r *Runner) setStatus(id uuid.UUID, status TaskStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[id] = status
}

// worker processes tasks from the queue until the runner stops.
func (r *Runner) worker(id int) {
	defer r.wg.Done()

	r.logger.Debug("starting worker", slog.Int("worker_id", id))

	for {
		select {
		case <-r.ctx.Done():
			r.logger.Debug("stopping worker", slog.Int("worker_id", id))
			return

		case task, ok := <-r.taskChan:
			if !ok {
				return
			}
			r.processTask(task, id)
		}
	}
}

// processTask handles execution of a single task
func (r *Runner) processTask(task Task, workerID int) {
	log := r.logger.With(
		slog.String("task_id", task.ID().String()),
		slog.String("task_type", task.Type()),
		slog.Int("worker_id", workerID),
	)

	r.setStatus(task.ID(), TaskStatusProcessing)
	log.Info("processing task")

	if err := task.Execute(r.ctx); err != nil {
		log.Error("task execution failed", slog.String("error", err.Error()))
		r.setStatus(task.ID(), TaskStatusFailed)
		return
	}

	log.Info("task completed successfully")
	r.setStatus(task.ID(), TaskStatusCompleted)
}
