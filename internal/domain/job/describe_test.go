package job

import (
	"strings"
	"testing"
)

func TestCleanDescriptionEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		if got := CleanDescription(in); got != "No description available" {
			t.Errorf("CleanDescription(%q) = %q", in, got)
		}
	}
}

func TestCleanDescriptionStripsHTML(t *testing.T) {
	in := "<p>We are hiring a <strong>Go developer</strong>.</p>"
	got := CleanDescription(in)
	if got != "We are hiring a Go developer." {
		t.Fatalf("got %q", got)
	}
}

func TestCleanDescriptionEntities(t *testing.T) {
	in := "Pay&nbsp;is fair &amp; benefits are &quot;great&quot;, we don&#39;t lie"
	got := CleanDescription(in)
	want := `Pay is fair & benefits are "great", we don't lie`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanDescriptionLiteralNewlines(t *testing.T) {
	in := `Responsibilities:\n\n- build stuff\n- ship stuff`
	got := CleanDescription(in)
	if strings.Contains(got, `\n`) {
		t.Fatalf("literal newline escapes survived: %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3 (blank runs collapsed): %q", len(lines), got)
	}
}

func TestCleanDescriptionMarkdown(t *testing.T) {
	in := "**Apply now** via [our site](https://example.com) [Remote OK]"
	got := CleanDescription(in)
	if strings.ContainsAny(got, "*[]") {
		t.Fatalf("markdown survived: %q", got)
	}
	if !strings.Contains(got, "Apply now") {
		t.Fatalf("text lost: %q", got)
	}
}

func TestCleanDescriptionTrackingLine(t *testing.T) {
	in := "Great role.\nPlease mention the word PANTS when applying #abc123\nApply today."
	got := CleanDescription(in)
	if strings.Contains(got, "mention the word") {
		t.Fatalf("tracking line survived: %q", got)
	}
	if !strings.Contains(got, "Great role.") || !strings.Contains(got, "Apply today.") {
		t.Fatalf("content lost: %q", got)
	}
}

func TestCleanDescriptionCollapsesSpaces(t *testing.T) {
	got := CleanDescription("Too    many\t\tspaces   here")
	if got != "Too many spaces here" {
		t.Fatalf("got %q", got)
	}
}
