// Package api exposes the HTTP surface: submission, status, result retrieval.
package api

import (
	"log/slog"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"thumbsvc/internal/blob"
	"thumbsvc/internal/store"
)

// Scheduler hands a created job off for background processing.
type Scheduler interface {
	Enqueue(id string)
}

type API struct {
	jobs      store.Store
	uploads   blob.Store
	thumbs    blob.Store
	scheduler Scheduler
	logger    *slog.Logger
	maxUpload int64
}

func New(jobs store.Store, uploads, thumbs blob.Store, scheduler Scheduler, maxUpload int64, logger *slog.Logger) *API {
	return &API{
		jobs:      jobs,
		uploads:   uploads,
		thumbs:    thumbs,
		scheduler: scheduler,
		logger:    logger,
		maxUpload: maxUpload,
	}
}

func (a *API) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/thumbnails", a.CreateThumbnail).Methods("POST")
	r.HandleFunc("/thumbnails/{job_id}", a.GetThumbnail).Methods("GET")
	r.HandleFunc("/jobs", a.ListJobs).Methods("GET")
	r.HandleFunc("/jobs/{job_id}/status", a.GetJobStatus).Methods("GET")
	r.HandleFunc("/healthz", a.Healthz).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return r
}
