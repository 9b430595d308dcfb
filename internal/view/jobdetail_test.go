package view

import (
	"context"
	"errors"
	"testing"

	"ai-jobmatch/internal/domain/job"
)

func TestLoadDetail(t *testing.T) {
	src := &mockJobSource{job: job.Job{
		ID:          "42",
		Title:       "Go Developer",
		Description: "<p>Build services in <strong>Go</strong>.</p>",
		MatchScore:  92,
	}}

	d, err := LoadDetail(context.Background(), src, "42")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if d.Description != "Build services in Go." {
		t.Fatalf("description = %q", d.Description)
	}
	if d.Band != job.BandExcellent {
		t.Fatalf("band = %q", d.Band)
	}
	// Normalization fills the optional pieces.
	if d.Job.MatchedSkills == nil || d.Job.Explanation != job.NoAnalysisPlaceholder {
		t.Fatalf("job not normalized: %+v", d.Job)
	}
}

func TestLoadDetailError(t *testing.T) {
	src := &mockJobSource{err: errors.New("down")}
	if _, err := LoadDetail(context.Background(), src, "42"); err == nil {
		t.Fatal("expected error")
	}
}
