package api

import (
	"strings"

	"github.com/repoboard/repoboard/internal/model"
)

// ParseRepoRef extracts owner and repo from a repository URL such as
// "https://github.com/acme/widgets" or "github.com/acme/widgets.git".
// Only the two path segments after the host are considered; a trailing
// ".git" on the repo segment is stripped. Whether the repository exists is
// not checked here.
func ParseRepoRef(ref string) (model.RepoRef, error) {
	s := strings.TrimSpace(ref)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 3 {
		return model.RepoRef{}, &InvalidRefError{Input: ref}
	}

	owner := parts[1]
	repo := strings.TrimSuffix(parts[2], ".git")
	if owner == "" || repo == "" {
		return model.RepoRef{}, &InvalidRefError{Input: ref}
	}
	return model.RepoRef{Owner: owner, Repo: repo}, nil
}

// ParseRepoInput accepts what ParseRepoRef accepts plus bare "owner/repo"
// strings, which is how repositories are typed at the command line.
func ParseRepoInput(input string) (model.RepoRef, error) {
	if ref, err := ParseRepoRef(input); err == nil {
		return ref, nil
	}
	parts := strings.Split(strings.Trim(strings.TrimSpace(input), "/"), "/")
	if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		return model.RepoRef{Owner: parts[0], Repo: strings.TrimSuffix(parts[1], ".git")}, nil
	}
	return model.RepoRef{}, &InvalidRefError{Input: input}
}
