// Package store persists the watched-repository list. The API layer never
// touches it; only the CLI and the admin view read or write the file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/repoboard/repoboard/internal/model"
)

type WatchList struct {
	path string
}

func New(path string) *WatchList {
	return &WatchList{path: path}
}

func (w *WatchList) Path() string {
	return w.path
}

// Load reads the watch list. A missing file is an empty list.
func (w *WatchList) Load() ([]model.RepoRef, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read watch list: %w", err)
	}
	var refs []model.RepoRef
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("parse watch list %s: %w", w.path, err)
	}
	return refs, nil
}

func (w *WatchList) Save(refs []model.RepoRef) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create watch list dir: %w", err)
	}
	data, err := json.MarshalIndent(refs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(w.path, data, 0o644)
}

// Add appends ref unless an entry with the same owner/repo already exists.
// Reports whether the list changed.
func (w *WatchList) Add(ref model.RepoRef) (bool, error) {
	refs, err := w.Load()
	if err != nil {
		return false, err
	}
	for _, r := range refs {
		if sameRef(r, ref) {
			return false, nil
		}
	}
	refs = append(refs, ref)
	return true, w.Save(refs)
}

// Remove drops ref from the list. Reports whether an entry was removed.
func (w *WatchList) Remove(ref model.RepoRef) (bool, error) {
	refs, err := w.Load()
	if err != nil {
		return false, err
	}
	kept := refs[:0]
	removed := false
	for _, r := range refs {
		if sameRef(r, ref) {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return false, nil
	}
	return true, w.Save(kept)
}

func sameRef(a, b model.RepoRef) bool {
	return strings.EqualFold(a.Owner, b.Owner) && strings.EqualFold(a.Repo, b.Repo)
}
