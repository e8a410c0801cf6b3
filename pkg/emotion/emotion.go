// Package emotion provides the emotional states a bot can express and the
// evaluators that map an emotion level to a state.
package emotion

import (
	"fmt"
	"strings"
)

// EmotionalState is the state reported in the emote attribute of a chat response
type EmotionalState string

const (
	None     EmotionalState = "NONE"
	Love     EmotionalState = "LOVE"
	Like     EmotionalState = "LIKE"
	Dislike  EmotionalState = "DISLIKE"
	Hate     EmotionalState = "HATE"
	Happy    EmotionalState = "HAPPY"
	Sad      EmotionalState = "SAD"
	Laughter EmotionalState = "LAUGHTER"
	Anger    EmotionalState = "ANGER"
	Surprise EmotionalState = "SURPRISE"
	Fear     EmotionalState = "FEAR"
	Calm     EmotionalState = "CALM"
)

var states = []EmotionalState{
	None, Love, Like, Dislike, Hate, Happy, Sad, Laughter, Anger, Surprise, Fear, Calm,
}

// States returns all known emotional states
func States() []EmotionalState {
	out := make([]EmotionalState, len(states))
	copy(out, states)
	return out
}

// Valid reports whether the state is a known state
func (s EmotionalState) Valid() bool {
	for _, v := range states {
		if v == s {
			return true
		}
	}
	return false
}

// ParseState parses an emote value. Matching is case-insensitive and
// the empty string is None.
func ParseState(s string) (EmotionalState, error) {
	if s == "" {
		return None, nil
	}
	state := EmotionalState(strings.ToUpper(strings.TrimSpace(s)))
	if !state.Valid() {
		return None, fmt.Errorf("unknown emotional state %q", s)
	}
	return state, nil
}

// Evaluator maps an emotion level in [-1, 1] to a state
type Evaluator interface {
	Evaluate(level float64) EmotionalState
}

// LoveEvaluator represents the emotions from love to hate
type LoveEvaluator struct{}

// Evaluate implements Evaluator
func (LoveEvaluator) Evaluate(level float64) EmotionalState {
	switch {
	case level < -0.6:
		return Hate
	case level < -0.1:
		return Dislike
	case level > 0.6:
		return Love
	case level > 0.1:
		return Like
	}
	return None
}
