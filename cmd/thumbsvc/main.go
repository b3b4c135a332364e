package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thumbsvc/internal/api"
	"thumbsvc/internal/blob"
	"thumbsvc/internal/config"
	"thumbsvc/internal/store"
	"thumbsvc/internal/thumbnail"
	"thumbsvc/internal/worker"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	jobs, err := newJobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialise job store: %v", err)
	}

	uploads, thumbs, err := newBlobStores(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialise blob storage: %v", err)
	}

	pool := worker.NewPool(jobs, uploads, thumbs, cfg.Workers, cfg.QueueSize, thumbnail.DefaultBound, logger)
	pool.Start()

	a := api.New(jobs, uploads, thumbs, pool, cfg.MaxUploadSize, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "job_store", cfg.JobStore, "blob_backend", cfg.BlobBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	pool.Stop()
}

func newJobStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.JobStore == "memory" {
		return store.NewMemory(cfg.JobTTL), nil
	}
	return store.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.JobTTL)
}

func newBlobStores(ctx context.Context, cfg config.Config) (uploads, thumbs blob.Store, err error) {
	if cfg.BlobBackend == "s3" {
		s3cfg := blob.S3Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Region:    cfg.MinioRegion,
		}
		uploads, err = blob.NewS3(ctx, s3cfg, cfg.UploadBucket)
		if err != nil {
			return nil, nil, err
		}
		thumbs, err = blob.NewS3(ctx, s3cfg, cfg.ThumbBucket)
		if err != nil {
			return nil, nil, err
		}
		return uploads, thumbs, nil
	}

	uploads, err = blob.NewFS(cfg.UploadDir)
	if err != nil {
		return nil, nil, err
	}
	thumbs, err = blob.NewFS(cfg.ThumbDir)
	if err != nil {
		return nil, nil, err
	}
	return uploads, thumbs, nil
}
