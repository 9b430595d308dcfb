package profile

import "strings"

// Profile is the user's matching record as the upstream API stores it.
// The ID is the identity provider's subject id, not something this
// client generates.
type Profile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	ResumeRef  string   `json:"resume,omitempty"`
}

// Complete reports whether the profile can drive job matching: role,
// experience, and at least one skill must be set.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.Role) != "" &&
		strings.TrimSpace(p.Experience) != "" &&
		len(p.Skills) > 0
}

// Roles is the fixed role catalog offered by the setup and account forms.
var Roles = []string{
	"frontend-developer",
	"backend-developer",
	"fullstack-developer",
	"data-scientist",
	"product-manager",
	"ui-ux-designer",
	"devops-engineer",
	"mobile-developer",
	"qa-engineer",
	"other",
}

// ExperienceBands is the fixed years-of-experience catalog.
var ExperienceBands = []string{"0-1", "2-4", "5-7", "8-10", "10+"}

// Resume upload constraints.
const MaxResumeBytes = 5 * 1024 * 1024

var ResumeExtensions = []string{".pdf", ".doc", ".docx"}

func KnownRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func KnownExperience(band string) bool {
	for _, b := range ExperienceBands {
		if b == band {
			return true
		}
	}
	return false
}

// AddSkill appends a trimmed skill unless it is empty or already present,
// preserving insertion order.
func AddSkill(skills []string, skill string) []string {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return skills
	}
	for _, s := range skills {
		if s == skill {
			return skills
		}
	}
	return append(skills, skill)
}
