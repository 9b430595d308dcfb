package profile

import (
	"reflect"
	"testing"
)

func TestComplete(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
		want bool
	}{
		{"full", Profile{Role: "backend-developer", Experience: "2-4", Skills: []string{"Go"}}, true},
		{"no role", Profile{Experience: "2-4", Skills: []string{"Go"}}, false},
		{"blank role", Profile{Role: "  ", Experience: "2-4", Skills: []string{"Go"}}, false},
		{"no experience", Profile{Role: "backend-developer", Skills: []string{"Go"}}, false},
		{"no skills", Profile{Role: "backend-developer", Experience: "2-4"}, false},
	}
	for _, tc := range cases {
		if got := tc.p.Complete(); got != tc.want {
			t.Errorf("%s: Complete() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAddSkill(t *testing.T) {
	skills := AddSkill(nil, "Go")
	skills = AddSkill(skills, "  Redis  ")
	skills = AddSkill(skills, "Go")
	skills = AddSkill(skills, "")
	skills = AddSkill(skills, "   ")

	want := []string{"Go", "Redis"}
	if !reflect.DeepEqual(skills, want) {
		t.Fatalf("skills = %v, want %v", skills, want)
	}
}

func TestCatalogs(t *testing.T) {
	if !KnownRole("backend-developer") || KnownRole("astronaut") {
		t.Fatal("role catalog lookup broken")
	}
	if !KnownExperience("10+") || KnownExperience("100") {
		t.Fatal("experience catalog lookup broken")
	}
}
