package services

import (
	"context"
	"log"
	"sync"
	"time"

	"alfredoptarigan/interview-coach/internal/metrics"
	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/repositories"
)

// ResultRecorder persists interview results off the request path. Writes are
// best-effort: failures are logged and counted, never returned to the caller.
type ResultRecorder interface {
	Start(ctx context.Context)
	Stop()
	Record(result *models.InterviewResult)
}

type resultRecorder struct {
	repo         repositories.InterviewResultRepository
	metrics      *metrics.Metrics
	queue        chan *models.InterviewResult
	concurrency  int
	writeTimeout time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}

	mu      sync.RWMutex
	stopped bool
}

func NewResultRecorder(
	repo repositories.InterviewResultRepository,
	m *metrics.Metrics,
	concurrency int,
	queueSize int,
	writeTimeout time.Duration,
) ResultRecorder {
	if concurrency < 1 {
		concurrency = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &resultRecorder{
		repo:         repo,
		metrics:      m,
		queue:        make(chan *models.InterviewResult, queueSize),
		concurrency:  concurrency,
		writeTimeout: writeTimeout,
		stopChan:     make(chan struct{}),
	}
}

// Start implements ResultRecorder.
func (r *resultRecorder) Start(ctx context.Context) {
	log.Printf("🚀 Starting result recorder with %d workers\n", r.concurrency)

	for i := 0; i < r.concurrency; i++ {
		r.wg.Add(1)
		go r.processResults(ctx, i+1)
	}
}

// Stop implements ResultRecorder. Results already queued are written before it returns.
func (r *resultRecorder) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	close(r.stopChan)
	r.mu.Unlock()

	log.Println("🛑 Stopping result recorder...")
	r.wg.Wait()
	log.Println("✅ Result recorder stopped")
}

// Record implements ResultRecorder. It never blocks: when the queue is full
// or the recorder is stopped the result is dropped.
func (r *resultRecorder) Record(result *models.InterviewResult) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		log.Printf("⚠️  Recorder stopped, dropping result for user %s\n", result.UserID)
		r.metrics.IncRecord(metrics.OutcomeDropped)
		return
	}

	select {
	case r.queue <- result:
	default:
		log.Printf("⚠️  Recorder queue full, dropping result for user %s\n", result.UserID)
		r.metrics.IncRecord(metrics.OutcomeDropped)
	}
}

func (r *resultRecorder) processResults(ctx context.Context, workerID int) {
	defer r.wg.Done()

	for {
		select {
		case <-r.stopChan:
			r.drain(ctx, workerID)
			return
		case result := <-r.queue:
			r.persist(ctx, workerID, result)
		}
	}
}

func (r *resultRecorder) drain(ctx context.Context, workerID int) {
	for {
		select {
		case result := <-r.queue:
			r.persist(ctx, workerID, result)
		default:
			return
		}
	}
}

func (r *resultRecorder) persist(ctx context.Context, workerID int, result *models.InterviewResult) {
	// Queued writes must survive request and shutdown cancellation.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
	defer cancel()

	if err := r.repo.Create(writeCtx, result); err != nil {
		log.Printf("❌ Recorder #%d failed to save result for user %s: %v\n", workerID, result.UserID, err)
		r.metrics.IncRecord(metrics.OutcomeFailure)
		return
	}
	r.metrics.IncRecord(metrics.OutcomeSuccess)
}
