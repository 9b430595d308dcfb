package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-jobmatch/internal/domain/profile"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, nil)
}

func TestProfileByEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profiles/me/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "u1@example.com" {
			t.Errorf("email = %q", got)
		}
		_ = json.NewEncoder(w).Encode(profile.Profile{ID: "p1", Email: "u1@example.com", Role: "backend-developer"})
	})

	prof, err := c.ProfileByEmail(context.Background(), "u1@example.com")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if prof.ID != "p1" || prof.Role != "backend-developer" {
		t.Fatalf("prof = %+v", prof)
	}
}

func TestProfileByEmailNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
	})

	_, err := c.ProfileByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestDoStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.MatchedJobs(context.Background(), "p1")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Status != http.StatusInternalServerError || se.Body != "boom" {
		t.Fatalf("status error = %+v", se)
	}
}

func TestMatchedJobs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matched-jobs/p1/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":"1","title":"Go Dev","match_score":88},{"id":"2","title":"SRE","match_score":74}]`))
	})

	jobs, err := c.MatchedJobs(context.Background(), "p1")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(jobs) != 2 || jobs[0].MatchScore != 88 {
		t.Fatalf("jobs = %+v", jobs)
	}
}

func TestJobDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/42/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"42","title":"Go Dev","explanation":"Strong overlap"}`))
	})

	j, err := c.JobDetail(context.Background(), "42")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if j.ID != "42" || j.Explanation != "Strong overlap" {
		t.Fatalf("job = %+v", j)
	}
}

func TestSendChat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Message     string           `json:"message"`
			UserProfile *profile.Profile `json:"user_profile"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Message != "hi" || req.UserProfile == nil || req.UserProfile.ID != "p1" {
			t.Errorf("req = %+v", req)
		}
		_, _ = w.Write([]byte(`{"reply":"hello"}`))
	})

	reply, err := c.SendChat(context.Background(), "hi", &profile.Profile{ID: "p1"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if reply != "hello" {
		t.Fatalf("reply = %q", reply)
	}
}

func TestSubmitProfileMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("role"); got != "backend-developer" {
			t.Errorf("role = %q", got)
		}
		if got := r.FormValue("skills"); got != `["Go","Redis"]` {
			t.Errorf("skills = %q", got)
		}
		if r.FormValue("id") != "" {
			t.Error("empty id must not be sent")
		}
		f, fh, err := r.FormFile("resume")
		if err != nil {
			t.Fatalf("resume: %v", err)
		}
		defer f.Close()
		if fh.Filename != "cv.pdf" {
			t.Errorf("filename = %q", fh.Filename)
		}
		_, _ = w.Write([]byte(`{"id":"p1"}`))
	})

	prof, err := c.CreateProfile(context.Background(), ProfileForm{
		Name:       "U One",
		Email:      "u1@example.com",
		Role:       "backend-developer",
		Experience: "2-4",
		Skills:     []string{"Go", "Redis"},
		Resume:     &ResumeFile{Name: "cv.pdf", Content: []byte("%PDF-1.4")},
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if prof.ID != "p1" {
		t.Fatalf("prof = %+v", prof)
	}
}

func TestUpdateProfileMethod(t *testing.T) {
	var gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"id":"p1"}`))
	})

	form := ProfileForm{Role: "backend-developer", Experience: "2-4", Skills: []string{"Go"}}
	if _, err := c.UpdateProfile(context.Background(), "p1", form, true); err != nil {
		t.Fatalf("err = %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Fatalf("partial update method = %q", gotMethod)
	}

	if _, err := c.UpdateProfile(context.Background(), "p1", form, false); err != nil {
		t.Fatalf("err = %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("full update method = %q", gotMethod)
	}
}

func TestDeleteProfile(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeleteProfile(context.Background(), "p1"); err != nil {
		t.Fatalf("err = %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/profiles/p1/" {
		t.Fatalf("%s %s", gotMethod, gotPath)
	}
}
