package job

import "testing"

func TestNormalize(t *testing.T) {
	j := Normalize(Job{ID: "1", MatchScore: -5})
	if j.Tags == nil || j.Skills == nil || j.Benefits == nil || j.MatchedSkills == nil || j.MissingSkills == nil {
		t.Fatalf("collections left nil: %+v", j)
	}
	if j.Explanation != NoAnalysisPlaceholder {
		t.Fatalf("explanation = %q", j.Explanation)
	}
	if j.MatchScore != 0 {
		t.Fatalf("score = %d, want clamped to 0", j.MatchScore)
	}

	j = Normalize(Job{Explanation: "Good fit", MatchScore: 88})
	if j.Explanation != "Good fit" || j.MatchScore != 88 {
		t.Fatalf("present values changed: %+v", j)
	}
}

func TestBand(t *testing.T) {
	cases := []struct {
		score int
		want  ScoreBand
	}{
		{95, BandExcellent},
		{90, BandExcellent},
		{89, BandStrong},
		{80, BandStrong},
		{79, BandFair},
		{70, BandFair},
		{69, BandLow},
		{0, BandLow},
	}
	for _, tc := range cases {
		if got := Band(tc.score); got != tc.want {
			t.Errorf("Band(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestPostedTime(t *testing.T) {
	if (Job{Posted: "2026-03-01"}).PostedTime().IsZero() {
		t.Fatal("date-only format must parse")
	}
	if (Job{Posted: "2026-03-01T10:00:00Z"}).PostedTime().IsZero() {
		t.Fatal("RFC3339 must parse")
	}
	if !(Job{Posted: "yesterday"}).PostedTime().IsZero() {
		t.Fatal("junk must yield the zero time")
	}
}
