package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"thumbsvc/internal/job"
	"thumbsvc/internal/metrics"
	"thumbsvc/internal/store"
	"thumbsvc/internal/thumbnail"
)

// CreateThumbnail accepts a multipart image upload, creates the job record
// and schedules processing. The response carries only the job id; the client
// learns the outcome by polling the status endpoint.
func (a *API) CreateThumbnail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	if strings.TrimSpace(header.Filename) == "" {
		writeError(w, http.StatusBadRequest, "missing file name")
		return
	}

	// Declared-type check only; a spoofed type fails later at decode and the
	// job ends up Failed.
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "content type must be image/*")
		return
	}

	// The id in the stored name keeps duplicate filenames from colliding.
	id := uuid.New().String()
	storedName := id + "_" + filepath.Base(header.Filename)

	if err := a.uploads.Save(r.Context(), storedName, contentType, file); err != nil {
		a.logger.Error("failed to persist upload", "job_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	j := job.New(id, storedName)
	if err := a.jobs.Put(r.Context(), j); err != nil {
		a.logger.Error("failed to create job record", "job_id", id, "error", err)
		writeStoreError(w, err)
		return
	}

	metrics.JobsCreated.Inc()
	a.scheduler.Enqueue(id)
	a.logger.Info("job created", "job_id", id, "input", storedName)

	writeJSON(w, http.StatusAccepted, map[string]string{"job_id": id})
}

// GetThumbnail streams the generated thumbnail once the job has succeeded.
func (a *API) GetThumbnail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["job_id"]

	j, err := a.jobs.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if j.Status != job.StatusSucceeded || j.OutputFile == nil {
		writeError(w, http.StatusBadRequest, "job has not succeeded yet")
		return
	}

	thumb, err := a.thumbs.Open(r.Context(), *j.OutputFile)
	if err != nil {
		a.logger.Error("failed to open thumbnail", "job_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read thumbnail")
		return
	}
	defer thumb.Close()

	w.Header().Set("Content-Type", thumbnail.ContentType(*j.OutputFile))
	w.Header().Set("Content-Disposition", `inline; filename="`+*j.OutputFile+`"`)
	if _, err := io.Copy(w, thumb); err != nil {
		a.logger.Warn("thumbnail stream interrupted", "job_id", id, "error", err)
	}
}

// GetJobStatus returns the job record as stored.
func (a *API) GetJobStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["job_id"]

	j, err := a.jobs.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// ListJobs returns every known job keyed by id. An empty store yields {}.
func (a *API) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := a.jobs.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	byID := make(map[string]job.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	writeJSON(w, http.StatusOK, byID)
}

func (a *API) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError keeps backend failures distinct from a genuinely missing
// record.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "job not found")
	case errors.Is(err, store.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "job store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
