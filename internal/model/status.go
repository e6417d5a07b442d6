package model

import "strings"

// StatusClass normalizes a run's conclusion/status pair into a stable
// styling token. A run that is queued or in progress reports that live
// state even if it carries a conclusion from a previous attempt.
func StatusClass(conclusion RunConclusion, status RunStatus) string {
	if status == RunStatusInProgress || status == RunStatusQueued {
		return string(status)
	}
	switch conclusion {
	case ConclusionSuccess, ConclusionFailure, ConclusionCancelled:
		return string(conclusion)
	}
	if status == "" {
		return string(RunStatusQueued)
	}
	return string(status)
}

// StatusLabel is the display-text counterpart of StatusClass: same
// precedence, human-readable vocabulary.
func StatusLabel(conclusion RunConclusion, status RunStatus) string {
	if status == RunStatusInProgress || status == RunStatusQueued {
		return humanize(string(status))
	}
	switch conclusion {
	case ConclusionSuccess, ConclusionFailure, ConclusionCancelled:
		return humanize(string(conclusion))
	}
	if status == "" {
		return "Unknown"
	}
	return humanize(string(status))
}

func (r Run) StatusClass() string {
	return StatusClass(r.Conclusion, r.Status)
}

func (r Run) StatusLabel() string {
	return StatusLabel(r.Conclusion, r.Status)
}

func humanize(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
