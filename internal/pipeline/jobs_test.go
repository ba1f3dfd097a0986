package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestContentHashHex(t *testing.T) {
	a := ContentHashHex([]byte("hello"))
	b := ContentHashHex([]byte("hello"))
	c := ContentHashHex([]byte("world"))
	if a != b {
		t.Error("same content should hash identically")
	}
	if a == c {
		t.Error("different content should hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestJob_StatusTransitions(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}

	job.SetStatus(StatusExtracting, "extracting spans")
	if job.Status != StatusExtracting || job.Phase != "extracting spans" {
		t.Errorf("got %s/%s", job.Status, job.Phase)
	}

	job.SetStatus(StatusAnalyzing, "building outline")
	job.SetStatus(StatusCompleted, "done")
	if job.Status != StatusCompleted {
		t.Errorf("got %s", job.Status)
	}
}

func TestJob_SetCounts(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetCounts(120, 7)
	if job.Progress.Spans != 120 || job.Progress.Headings != 7 {
		t.Errorf("got %+v", job.Progress)
	}
}

func TestJob_SetResultReleasesFileData(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetFileData([]byte("raw bytes"))
	if job.FileData() == nil {
		t.Fatal("expected file data before result")
	}

	res := outline.Result{Title: "Doc", Outline: []outline.Heading{}}
	job.SetResult(res)

	if job.FileData() != nil {
		t.Error("file data should be released after result")
	}
	got := job.Result()
	if got == nil || got.Title != "Doc" {
		t.Errorf("got %+v", got)
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}
	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("snapshot errors must not be nil")
	}
	if snap.Result != nil {
		t.Error("in-flight job should have no result")
	}

	job.AddError("boom")
	snap = job.Snapshot()
	if len(snap.Progress.Errors) != 1 || snap.Progress.Errors[0] != "boom" {
		t.Errorf("got %v", snap.Progress.Errors)
	}
}

func TestJobStore_PutGetCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-time.Minute)}
	store.Put(fresh)
	store.Put(stale)

	if store.Get("fresh") == nil || store.Get("stale") == nil {
		t.Fatal("both jobs should be present before cleanup")
	}
	if store.Get("missing") != nil {
		t.Error("unknown id should return nil")
	}

	store.Cleanup()
	if store.Get("stale") != nil {
		t.Error("stale job should be evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("fresh job should survive cleanup")
	}
}

func TestNewJobID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewJobID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %d (%q)", len(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
