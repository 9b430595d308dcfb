package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"

	"ai-jobmatch/internal/domain/profile"
)

// ResumeFile is an uploaded resume carried through to the API unchanged.
type ResumeFile struct {
	Name    string
	Content []byte
}

// ProfileForm is the multipart payload for profile create and update.
// Skills travel as a JSON array field, matching the API contract.
type ProfileForm struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Experience string
	Skills     []string
	Resume     *ResumeFile
}

// ProfileByEmail looks up the caller's profile. A 404 maps to
// ErrProfileNotFound; every other non-2xx status is a *StatusError.
func (c *Client) ProfileByEmail(ctx context.Context, email string) (profile.Profile, error) {
	u := c.endpoint("/profiles/me/") + "?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return profile.Profile{}, err
	}

	var prof profile.Profile
	if err := c.do(req, &prof); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}
	return prof, nil
}

// CreateProfile registers a new profile.
func (c *Client) CreateProfile(ctx context.Context, form ProfileForm) (profile.Profile, error) {
	return c.submitProfile(ctx, http.MethodPost, c.endpoint("/profiles/"), form)
}

// UpdateProfile replaces (PUT) or partially updates (PATCH) a profile.
func (c *Client) UpdateProfile(ctx context.Context, id string, form ProfileForm, partial bool) (profile.Profile, error) {
	method := http.MethodPut
	if partial {
		method = http.MethodPatch
	}
	return c.submitProfile(ctx, method, c.endpoint("/profiles/"+url.PathEscape(id)+"/"), form)
}

// DeleteProfile permanently removes a profile. Callers are responsible for
// the confirmation sequence; this is just the wire call.
func (c *Client) DeleteProfile(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint("/profiles/"+url.PathEscape(id)+"/"), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) submitProfile(ctx context.Context, method, endpoint string, form ProfileForm) (profile.Profile, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"id":         form.ID,
		"name":       form.Name,
		"email":      form.Email,
		"role":       form.Role,
		"experience": form.Experience,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return profile.Profile{}, err
		}
	}

	skills := form.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return profile.Profile{}, err
	}
	if err := w.WriteField("skills", string(skillsJSON)); err != nil {
		return profile.Profile{}, err
	}

	if form.Resume != nil {
		fw, err := w.CreateFormFile("resume", form.Resume.Name)
		if err != nil {
			return profile.Profile{}, err
		}
		if _, err := fw.Write(form.Resume.Content); err != nil {
			return profile.Profile{}, err
		}
	}

	if err := w.Close(); err != nil {
		return profile.Profile{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, &buf)
	if err != nil {
		return profile.Profile{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var prof profile.Profile
	if err := c.do(req, &prof); err != nil {
		return profile.Profile{}, err
	}
	return prof, nil
}
