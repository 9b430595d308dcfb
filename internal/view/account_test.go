package view

import (
	"context"
	"errors"
	"testing"

	"ai-jobmatch/internal/domain/profile"
	"ai-jobmatch/internal/upstream"
)

type mockProfileAPI struct {
	created profile.Profile
	updated profile.Profile
	err     error

	createCalls int
	updateCalls int
	deleteCalls int
	lastPartial bool
}

func (m *mockProfileAPI) CreateProfile(context.Context, upstream.ProfileForm) (profile.Profile, error) {
	m.createCalls++
	return m.created, m.err
}

func (m *mockProfileAPI) UpdateProfile(_ context.Context, _ string, _ upstream.ProfileForm, partial bool) (profile.Profile, error) {
	m.updateCalls++
	m.lastPartial = partial
	return m.updated, m.err
}

func (m *mockProfileAPI) DeleteProfile(context.Context, string) error {
	m.deleteCalls++
	return m.err
}

func validForm() upstream.ProfileForm {
	return upstream.ProfileForm{
		Name:       "U One",
		Email:      "u1@example.com",
		Role:       "backend-developer",
		Experience: "2-4",
		Skills:     []string{"Go"},
	}
}

func TestDeleteAccountRequiresFullSequence(t *testing.T) {
	cases := []struct {
		name string
		req  DeleteRequest
	}{
		{"nothing", DeleteRequest{}},
		{"first only", DeleteRequest{ConfirmFirst: true}},
		{"both without phrase", DeleteRequest{ConfirmFirst: true, ConfirmSecond: true}},
		{"wrong phrase", DeleteRequest{ConfirmFirst: true, ConfirmSecond: true, Phrase: "delete"}},
		{"phrase without confirms", DeleteRequest{Phrase: "DELETE"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &mockProfileAPI{}
			err := DeleteAccount(context.Background(), api, "p1", tc.req)
			if !errors.Is(err, ErrNotConfirmed) {
				t.Fatalf("err = %v, want ErrNotConfirmed", err)
			}
			if api.deleteCalls != 0 {
				t.Fatalf("delete calls = %d, want 0", api.deleteCalls)
			}
		})
	}
}

func TestDeleteAccountConfirmed(t *testing.T) {
	api := &mockProfileAPI{}
	req := DeleteRequest{ConfirmFirst: true, ConfirmSecond: true, Phrase: "DELETE"}
	if err := DeleteAccount(context.Background(), api, "p1", req); err != nil {
		t.Fatalf("err = %v", err)
	}
	if api.deleteCalls != 1 {
		t.Fatalf("delete calls = %d, want 1", api.deleteCalls)
	}
}

func TestValidateProfileForm(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*upstream.ProfileForm)
		ok     bool
	}{
		{"valid", func(*upstream.ProfileForm) {}, true},
		{"unknown role", func(f *upstream.ProfileForm) { f.Role = "astronaut" }, false},
		{"unknown experience", func(f *upstream.ProfileForm) { f.Experience = "forever" }, false},
		{"no skills", func(f *upstream.ProfileForm) { f.Skills = nil }, false},
		{"blank skills", func(f *upstream.ProfileForm) { f.Skills = []string{" ", ""} }, false},
		{"valid resume", func(f *upstream.ProfileForm) {
			f.Resume = &upstream.ResumeFile{Name: "cv.pdf", Content: []byte("x")}
		}, true},
		{"oversized resume", func(f *upstream.ProfileForm) {
			f.Resume = &upstream.ResumeFile{Name: "cv.pdf", Content: make([]byte, profile.MaxResumeBytes+1)}
		}, false},
		{"bad extension", func(f *upstream.ProfileForm) {
			f.Resume = &upstream.ResumeFile{Name: "cv.exe", Content: []byte("x")}
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			err := ValidateProfileForm(f)
			if tc.ok && err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrInvalidForm) {
					t.Fatalf("err = %v, want ErrInvalidForm", err)
				}
			}
		})
	}
}

func TestSubmitProfileCreatesWithoutID(t *testing.T) {
	api := &mockProfileAPI{created: profile.Profile{ID: "p1"}}
	got, err := SubmitProfile(context.Background(), api, validForm())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if got.ID != "p1" || api.createCalls != 1 || api.updateCalls != 0 {
		t.Fatalf("got %+v, creates=%d updates=%d", got, api.createCalls, api.updateCalls)
	}
}

func TestSubmitProfileUpdatesWithID(t *testing.T) {
	api := &mockProfileAPI{updated: profile.Profile{ID: "p1"}}
	f := validForm()
	f.ID = "p1"
	if _, err := SubmitProfile(context.Background(), api, f); err != nil {
		t.Fatalf("err = %v", err)
	}
	if api.updateCalls != 1 || api.createCalls != 0 {
		t.Fatalf("creates=%d updates=%d", api.createCalls, api.updateCalls)
	}
	if !api.lastPartial {
		t.Fatal("setup updates must be partial")
	}
}

func TestUpdateAccountValidatesFirst(t *testing.T) {
	api := &mockProfileAPI{}
	f := validForm()
	f.Role = "astronaut"
	if _, err := UpdateAccount(context.Background(), api, "p1", f); err == nil {
		t.Fatal("expected validation error")
	}
	if api.updateCalls != 0 {
		t.Fatalf("update calls = %d, want 0", api.updateCalls)
	}
}
