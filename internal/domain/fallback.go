package domain

import "strings"

// FallbackEngine produces cues without a language model.
type FallbackEngine struct {
	poses   []PoseCue
	generic []string
	rng     RNG
}

func NewFallbackEngine(poses []PoseCue, generic []string, rng RNG) *FallbackEngine {
	return &FallbackEngine{poses: poses, generic: generic, rng: rng}
}

// Resolve returns the cue of the first pose (in table order) whose name occurs
// in the lowercased phrase, or a random generic cue when none does.
func (e *FallbackEngine) Resolve(phrase string) string {
	lower := strings.ToLower(phrase)
	for _, p := range e.poses {
		if strings.Contains(lower, p.Name) {
			return p.Cue
		}
	}
	return e.generic[e.rng.Intn(len(e.generic))]
}
