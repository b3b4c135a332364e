package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"thumbsvc/internal/job"
)

func TestMemoryPutGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	j := job.New("abc", "abc_cat.png")
	if err := m.Put(ctx, j); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := m.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != j.ID || got.Status != job.StatusProcessing || got.InputFile != j.InputFile {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestMemoryGetUnknown(t *testing.T) {
	m := NewMemory(0)
	_, err := m.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	j := job.New("abc", "abc_cat.png")
	if err := m.Put(ctx, j); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	output := "thumb_abc_cat.png"
	j.Status = job.StatusSucceeded
	j.OutputFile = &output
	if err := m.Put(ctx, j); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got, err := m.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != job.StatusSucceeded || got.OutputFile == nil || *got.OutputFile != output {
		t.Fatalf("overwrite not visible: %+v", got)
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(20 * time.Millisecond)

	if err := m.Put(ctx, job.New("abc", "abc_cat.png")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if _, err := m.Get(ctx, "abc"); err != nil {
		t.Fatalf("get before expiry failed: %v", err)
	}

	time.Sleep(40 * time.Millisecond)

	if _, err := m.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}

	jobs, err := m.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected expired record excluded from list, got %d", len(jobs))
	}
}

func TestMemoryList(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	jobs, err := m.List(ctx)
	if err != nil {
		t.Fatalf("list on empty store failed: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty list, got %d", len(jobs))
	}

	for _, id := range []string{"a", "b", "c"} {
		if err := m.Put(ctx, job.New(id, id+"_f.png")); err != nil {
			t.Fatalf("put %s failed: %v", id, err)
		}
	}

	jobs, err = m.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
}
