package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"cheap", "meds", "now"}, Tokenize("Cheap MEDS, now!!"))
	assert.Equal(t, []string{"v2", "rollout"}, Tokenize("v2-rollout"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  ...  "))
}

func TestTokenize_KeepsRepeats(t *testing.T) {
	// Deduplication is the classifier's job (binarized mode), not the
	// tokenizer's.
	assert.Equal(t, []string{"buy", "buy", "buy"}, Tokenize("buy buy buy"))
}
