package pipeline

import (
	"testing"
	"time"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	h1 := ContentHashHex([]byte("aaa"))
	h2 := ContentHashHex([]byte("bbb"))
	if h1 == h2 {
		t.Error("expected different hashes for different inputs")
	}
}

func TestNewJob_Defaults(t *testing.T) {
	job := NewJob("report.md", []byte("# hi"))
	if job.ID == "" {
		t.Error("expected a generated job ID")
	}
	if job.Status != StatusQueued {
		t.Errorf("expected status %q, got %q", StatusQueued, job.Status)
	}
	if job.Filename != "report.md" {
		t.Errorf("expected filename %q, got %q", "report.md", job.Filename)
	}
	if job.ContentHash == "" {
		t.Error("expected content hash to be set")
	}
	if string(job.FileData()) != "# hi" {
		t.Errorf("expected file data preserved, got %q", job.FileData())
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("doc.txt", []byte("body"))

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusParsing, "parsing"},
		{StatusTranscoding, "transcoding"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_SetResultCompletes(t *testing.T) {
	job := NewJob("doc.txt", []byte("body"))
	job.SetResult("[b]body[/b]\n\n")

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Errorf("expected status %q, got %q", StatusCompleted, snap.Status)
	}
	if snap.Result != "[b]body[/b]\n\n" {
		t.Errorf("expected result preserved, got %q", snap.Result)
	}
	if snap.Error != "" {
		t.Errorf("expected no error, got %q", snap.Error)
	}
}

func TestJob_FailRecordsError(t *testing.T) {
	job := NewJob("doc.txt", []byte("body"))
	job.Fail("transcoding", errUnsupportedProbe{})

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("expected status %q, got %q", StatusFailed, snap.Status)
	}
	if snap.Phase != "transcoding" {
		t.Errorf("expected phase %q, got %q", "transcoding", snap.Phase)
	}
	if snap.Error != "boom" {
		t.Errorf("expected error %q, got %q", "boom", snap.Error)
	}
	if snap.Result != "" {
		t.Errorf("expected no result on failure, got %q", snap.Result)
	}
}

type errUnsupportedProbe struct{}

func (errUnsupportedProbe) Error() string { return "boom" }

func TestGenerateULID_UniqueAndSorted(t *testing.T) {
	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 100; i++ {
		id := generateULID()
		if len(id) != 26 {
			t.Fatalf("expected 26-character ULID, got %d (%q)", len(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate ULID %q", id)
		}
		seen[id] = true
		if prev != "" && id < prev {
			t.Fatalf("expected IDs to sort by creation, %q < %q", id, prev)
		}
		prev = id
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob("a.md", []byte("x"))
	store.Put(job)

	got := store.Get(job.ID)
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != job.ID {
		t.Errorf("expected ID %q, got %q", job.ID, got.ID)
	}
}

func TestJobStore_GetMissing(t *testing.T) {
	store := NewJobStore(time.Hour)
	if store.Get("nonexistent") != nil {
		t.Error("expected nil for missing job")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := NewJob("old.md", []byte("x"))
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	// Add a fresh job.
	fresh := NewJob("new.md", []byte("y"))
	store.Put(fresh)

	store.Cleanup()

	if store.Get(expired.ID) != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestJobStore_CleanupEmpty(t *testing.T) {
	store := NewJobStore(time.Hour)
	// Should not panic on empty store.
	store.Cleanup()
}
