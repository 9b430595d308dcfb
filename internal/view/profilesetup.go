package view

import (
	"context"

	"ai-jobmatch/internal/domain/profile"
	"ai-jobmatch/internal/upstream"
)

// SubmitProfile validates and submits the setup form. A form without an
// id creates the profile; a form with one updates it in place, so the
// setup page doubles as the edit flow for an incomplete profile. The
// returned profile is whatever the API stored.
func SubmitProfile(ctx context.Context, api ProfileAPI, form upstream.ProfileForm) (profile.Profile, error) {
	if err := ValidateProfileForm(form); err != nil {
		return profile.Profile{}, err
	}
	if form.ID == "" {
		return api.CreateProfile(ctx, form)
	}
	return api.UpdateProfile(ctx, form.ID, form, true)
}
