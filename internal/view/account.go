package view

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"ai-jobmatch/internal/domain/profile"
	"ai-jobmatch/internal/upstream"
)

// ProfileAPI is the slice of the upstream API the setup and account views
// consume.
type ProfileAPI interface {
	CreateProfile(ctx context.Context, form upstream.ProfileForm) (profile.Profile, error)
	UpdateProfile(ctx context.Context, id string, form upstream.ProfileForm, partial bool) (profile.Profile, error)
	DeleteProfile(ctx context.Context, id string) error
}

// ErrNotConfirmed means the deletion confirmation sequence was not
// completed exactly; no request was issued.
var ErrNotConfirmed = errors.New("deletion not confirmed")

// ErrInvalidForm wraps every validation failure so callers can tell a
// rejected form from a wire failure.
var ErrInvalidForm = errors.New("invalid profile form")

// DeletePhrase is the literal the user must type to confirm deletion.
const DeletePhrase = "DELETE"

// DeleteRequest carries the full confirmation sequence for an account
// deletion: two explicit confirmations plus the typed phrase.
type DeleteRequest struct {
	ConfirmFirst  bool   `json:"confirm_first"`
	ConfirmSecond bool   `json:"confirm_second"`
	Phrase        string `json:"phrase"`
}

// Confirmed reports whether every step of the sequence was completed.
// The phrase comparison is exact, including case.
func (r DeleteRequest) Confirmed() bool {
	return r.ConfirmFirst && r.ConfirmSecond && r.Phrase == DeletePhrase
}

// DeleteAccount issues the upstream deletion if and only if the
// confirmation sequence is complete. An unconfirmed request returns
// ErrNotConfirmed with zero upstream calls.
func DeleteAccount(ctx context.Context, api ProfileAPI, profileID string, req DeleteRequest) error {
	if !req.Confirmed() {
		return ErrNotConfirmed
	}
	return api.DeleteProfile(ctx, profileID)
}

// ValidateProfileForm checks a setup or account submission before it
// touches the wire: role and experience must come from the catalogs, at
// least one skill is required, and any resume must fit the size and
// extension limits.
func ValidateProfileForm(form upstream.ProfileForm) error {
	if !profile.KnownRole(form.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidForm, form.Role)
	}
	if !profile.KnownExperience(form.Experience) {
		return fmt.Errorf("%w: unknown experience band %q", ErrInvalidForm, form.Experience)
	}
	skills := 0
	for _, s := range form.Skills {
		if strings.TrimSpace(s) != "" {
			skills++
		}
	}
	if skills == 0 {
		return fmt.Errorf("%w: at least one skill is required", ErrInvalidForm)
	}
	if form.Resume != nil {
		if len(form.Resume.Content) > profile.MaxResumeBytes {
			return fmt.Errorf("%w: resume exceeds %d bytes", ErrInvalidForm, profile.MaxResumeBytes)
		}
		ext := strings.ToLower(filepath.Ext(form.Resume.Name))
		allowed := false
		for _, e := range profile.ResumeExtensions {
			if ext == e {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: unsupported resume type %q", ErrInvalidForm, ext)
		}
	}
	return nil
}

// UpdateAccount validates and submits a partial profile update from the
// account page, returning the profile as the API stored it.
func UpdateAccount(ctx context.Context, api ProfileAPI, profileID string, form upstream.ProfileForm) (profile.Profile, error) {
	if err := ValidateProfileForm(form); err != nil {
		return profile.Profile{}, err
	}
	return api.UpdateProfile(ctx, profileID, form, true)
}
