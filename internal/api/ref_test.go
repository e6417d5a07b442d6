package api

import (
	"errors"
	"testing"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		owner string
		repo  string
	}{
		{
			name:  "https url",
			input: "https://github.com/acme/widgets",
			owner: "acme",
			repo:  "widgets",
		},
		{
			name:  "git suffix stripped",
			input: "https://github.com/acme/widgets.git",
			owner: "acme",
			repo:  "widgets",
		},
		{
			name:  "no scheme",
			input: "github.com/octocat/hello-world",
			owner: "octocat",
			repo:  "hello-world",
		},
		{
			name:  "trailing slash",
			input: "https://github.com/acme/widgets/",
			owner: "acme",
			repo:  "widgets",
		},
		{
			name:  "extra path segments ignored",
			input: "https://github.com/acme/widgets/actions/runs/1",
			owner: "acme",
			repo:  "widgets",
		},
		{
			name:  "query string ignored",
			input: "https://github.com/acme/widgets?tab=readme-ov-file",
			owner: "acme",
			repo:  "widgets",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoRef(tt.input)
			if err != nil {
				t.Fatalf("ParseRepoRef(%q) error: %v", tt.input, err)
			}
			if got.Owner != tt.owner || got.Repo != tt.repo {
				t.Errorf("ParseRepoRef(%q) = %s/%s, want %s/%s",
					tt.input, got.Owner, got.Repo, tt.owner, tt.repo)
			}
		})
	}
}

func TestParseRepoInput(t *testing.T) {
	tests := []struct {
		input string
		owner string
		repo  string
		ok    bool
	}{
		{"https://github.com/acme/widgets", "acme", "widgets", true},
		{"github.com/acme/widgets.git", "acme", "widgets", true},
		{"acme/widgets", "acme", "widgets", true},
		{"acme/widgets.git", "acme", "widgets", true},
		{"widgets", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		ref, err := ParseRepoInput(tt.input)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseRepoInput(%q) error: %v", tt.input, err)
				continue
			}
			if ref.Owner != tt.owner || ref.Repo != tt.repo {
				t.Errorf("ParseRepoInput(%q) = %v, want %s/%s", tt.input, ref, tt.owner, tt.repo)
			}
		} else if err == nil {
			t.Errorf("ParseRepoInput(%q) expected error", tt.input)
		}
	}
}

func TestParseRepoRefInvalid(t *testing.T) {
	inputs := []string{
		"",
		"widgets",
		"acme/widgets",
		"https://github.com/acme",
		"https://github.com//widgets",
		"https://github.com/acme/",
	}
	for _, input := range inputs {
		_, err := ParseRepoRef(input)
		if err == nil {
			t.Errorf("ParseRepoRef(%q) expected error, got nil", input)
			continue
		}
		var refErr *InvalidRefError
		if !errors.As(err, &refErr) {
			t.Errorf("ParseRepoRef(%q) error = %T, want *InvalidRefError", input, err)
		}
	}
}
