package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoveEvaluator(t *testing.T) {
	tests := []struct {
		level float64
		want  EmotionalState
	}{
		{-1.0, Hate},
		{-0.61, Hate},
		{-0.6, Dislike},
		{-0.2, Dislike},
		{-0.1, None},
		{0, None},
		{0.1, None},
		{0.11, Like},
		{0.6, Like},
		{0.61, Love},
		{1.0, Love},
	}

	var e LoveEvaluator
	for _, tt := range tests {
		if got := e.Evaluate(tt.level); got != tt.want {
			t.Errorf("Evaluate(%v) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestParseState(t *testing.T) {
	s, err := ParseState("love")
	require.NoError(t, err)
	assert.Equal(t, Love, s)

	s, err = ParseState("")
	require.NoError(t, err)
	assert.Equal(t, None, s)

	_, err = ParseState("grumpy")
	assert.Error(t, err)
}

func TestStatesReturnsCopy(t *testing.T) {
	s := States()
	s[0] = "MUTATED"
	assert.Equal(t, None, States()[0])
}
