// Package worker runs thumbnail generation off the request path.
package worker

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"thumbsvc/internal/blob"
	"thumbsvc/internal/job"
	"thumbsvc/internal/metrics"
	"thumbsvc/internal/store"
	"thumbsvc/internal/thumbnail"
)

// Pool consumes job ids from a buffered channel with a fixed number of
// goroutines, so one slow decode never blocks other jobs or the HTTP path.
type Pool struct {
	queue   chan string
	jobs    store.Store
	uploads blob.Store
	thumbs  blob.Store
	bound   int
	workers int
	logger  *slog.Logger

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPool wires a pool over the given stores. bound caps the thumbnail's
// longest side.
func NewPool(jobs store.Store, uploads, thumbs blob.Store, workers, queueSize, bound int, logger *slog.Logger) *Pool {
	return &Pool{
		queue:    make(chan string, queueSize),
		jobs:     jobs,
		uploads:  uploads,
		thumbs:   thumbs,
		bound:    bound,
		workers:  workers,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.logger.Info("starting workers", "count", p.workers, "queue_size", cap(p.queue))
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

// Stop signals the workers and waits for in-flight jobs to finish. Ids still
// buffered in the queue are abandoned; their records stay Processing until
// the store expires them.
func (p *Pool) Stop() {
	close(p.stopChan)
	p.wg.Wait()
}

// Enqueue schedules a job id for processing. Fire-and-forget: the caller
// never observes the outcome.
func (p *Pool) Enqueue(id string) {
	p.queue <- id
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case id := <-p.queue:
			p.process(id)
		case <-p.stopChan:
			return
		}
	}
}

// process always leaves an existing job record in a terminal state, whatever
// goes wrong underneath.
func (p *Pool) process(id string) {
	ctx := context.Background()

	j, err := p.jobs.Get(ctx, id)
	if err != nil {
		// Nothing to update: the record expired, never existed, or the store
		// is down. Log-worthy only.
		p.logger.Warn("skipping job without record", "job_id", id, "error", err)
		return
	}
	if j.Status.Terminal() {
		p.logger.Warn("job already terminal", "job_id", id, "status", j.Status)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic during processing", "job_id", id, "panic", r)
			p.markFailed(ctx, j)
		}
	}()

	start := time.Now()
	output, err := p.generate(ctx, j)
	if err != nil {
		p.logger.Error("job failed", "job_id", id, "input", j.InputFile, "error", err)
		p.markFailed(ctx, j)
		return
	}

	j.Status = job.StatusSucceeded
	j.OutputFile = &output
	if err := p.jobs.Put(ctx, j); err != nil {
		p.logger.Error("failed to mark job succeeded", "job_id", id, "error", err)
		return
	}

	metrics.JobsSucceeded.Inc()
	metrics.ProcessingSeconds.Observe(time.Since(start).Seconds())
	p.logger.Info("job completed", "job_id", id, "output", output, "duration", time.Since(start))
}

func (p *Pool) generate(ctx context.Context, j job.Job) (string, error) {
	src, err := p.uploads.Open(ctx, j.InputFile)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	data, contentType, err := thumbnail.Generate(src, j.InputFile, p.bound)
	if err != nil {
		return "", err
	}

	output := thumbnail.OutputName(j.InputFile)
	if err := p.thumbs.Save(ctx, output, contentType, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return output, nil
}

func (p *Pool) markFailed(ctx context.Context, j job.Job) {
	j.Status = job.StatusFailed
	j.OutputFile = nil
	if err := p.jobs.Put(ctx, j); err != nil {
		p.logger.Error("failed to mark job failed", "job_id", j.ID, "error", err)
		return
	}
	metrics.JobsFailed.Inc()
}
