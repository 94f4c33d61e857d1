package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosterior_DistributionSumsToOne(t *testing.T) {
	c := newTestClassifier(t, Options{})
	require.NoError(t, c.Train([]string{"cheap", "meds"}, "spam"))
	require.NoError(t, c.Train([]string{"hello", "friend"}, "ham"))
	require.NoError(t, c.Train([]string{"invoice", "attached"}, "work"))

	result, err := c.Classify([]string{"cheap", "friend"})
	require.NoError(t, err)

	var sum float64
	for _, p := range result.Probabilities() {
		assert.False(t, math.IsNaN(p))
		assert.Greater(t, p, 0.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPosterior_SpamBeatsHamOnSpamToken(t *testing.T) {
	c := newTestClassifier(t, Options{})
	require.NoError(t, c.Train([]string{"cheap", "meds"}, "spam"))
	require.NoError(t, c.Train([]string{"hello", "friend"}, "ham"))

	result, err := c.Classify([]string{"cheap"})
	require.NoError(t, err)

	assert.Greater(t, result.Prob("spam"), result.Prob("ham"))

	best, p := result.Best()
	assert.Equal(t, "spam", best)
	assert.InDelta(t, result.Prob("spam"), p, 1e-12)
}

func TestPosterior_SingleCategoryIsCertain(t *testing.T) {
	c := newTestClassifier(t, Options{})
	require.NoError(t, c.Train([]string{"a", "b"}, "only"))

	result, err := c.Classify([]string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Len())
	assert.InDelta(t, 1.0, result.Prob("only"), 1e-12)
}

func TestPosterior_UnseenTokenStillValid(t *testing.T) {
	c := newTestClassifier(t, Options{})
	require.NoError(t, c.Train([]string{"cheap", "meds"}, "spam"))
	require.NoError(t, c.Train([]string{"hello", "friend"}, "ham"))

	result, err := c.Classify([]string{"zebra"})
	require.NoError(t, err)

	var sum float64
	for name, p := range result.Probabilities() {
		assert.False(t, math.IsNaN(p), "category %q", name)
		assert.Greater(t, p, 0.0, "Laplace smoothing keeps %q away from zero", name)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPosterior_NotTrained(t *testing.T) {
	c := newTestClassifier(t, Options{})

	_, err := c.Classify([]string{"anything"})
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestPosterior_EmptyTokenSetSingleCategoryIsDegenerate(t *testing.T) {
	// One category with an empirical prior of exactly 1 makes the raw log
	// score 0 when no tokens contribute — the documented degenerate case.
	c := newTestClassifier(t, Options{})
	require.NoError(t, c.Train([]string{"a"}, "only"))

	_, err := c.Classify(nil)
	assert.ErrorIs(t, err, ErrDegenerateScore)
}

func TestPosterior_EmpiricalPriorsWeighHeavierThanUniform(t *testing.T) {
	empirical := newTestClassifier(t, Options{})
	uniform := newTestClassifier(t, Options{UniformPriors: true})

	for _, c := range []*Classifier{empirical, uniform} {
		require.NoError(t, c.Train([]string{"x"}, "a"))
		require.NoError(t, c.Train([]string{"x"}, "a"))
		require.NoError(t, c.Train([]string{"y"}, "b"))
	}

	re, err := empirical.Classify([]string{"x"})
	require.NoError(t, err)
	ru, err := uniform.Classify([]string{"x"})
	require.NoError(t, err)

	assert.Greater(t, re.Prob("a"), re.Prob("b"))
	assert.Greater(t, ru.Prob("a"), ru.Prob("b"))
	assert.Greater(t, re.Prob("a"), ru.Prob("a"),
		"the 2:1 example ratio should only boost category a under empirical priors")
}

func TestPosterior_LogSizeTransformChangesSmoothing(t *testing.T) {
	identity := newTestClassifier(t, Options{})
	logged := newTestClassifier(t, Options{SizeTransform: SizeNaturalLog})

	for _, c := range []*Classifier{identity, logged} {
		require.NoError(t, c.Train([]string{"cheap", "meds", "now"}, "spam"))
		require.NoError(t, c.Train([]string{"hello", "friend", "lunch"}, "ham"))
	}

	ri, err := identity.Classify([]string{"cheap"})
	require.NoError(t, err)
	rl, err := logged.Classify([]string{"cheap"})
	require.NoError(t, err)

	// Both agree on the winner; the smaller log-sized denominator makes the
	// seen token count for more, so the winner is more confident.
	bestI, _ := ri.Best()
	bestL, _ := rl.Best()
	assert.Equal(t, "spam", bestI)
	assert.Equal(t, "spam", bestL)
	assert.Greater(t, rl.Prob("spam"), ri.Prob("spam"))
}

func TestPosterior_SmoothingConstantDefaultsToOne(t *testing.T) {
	implicit := newTestClassifier(t, Options{})
	explicit := newTestClassifier(t, Options{SmoothingK: 1})

	for _, c := range []*Classifier{implicit, explicit} {
		require.NoError(t, c.Train([]string{"cheap"}, "spam"))
		require.NoError(t, c.Train([]string{"hello"}, "ham"))
	}

	ri, err := implicit.Classify([]string{"cheap"})
	require.NoError(t, err)
	re, err := explicit.Classify([]string{"cheap"})
	require.NoError(t, err)
	assert.InDelta(t, re.Prob("spam"), ri.Prob("spam"), 1e-12)
}

func TestRenormalize_PreservesRanking(t *testing.T) {
	result, err := renormalize(map[string]float64{
		"likely":   -1.0,
		"middling": -2.0,
		"unlikely": -4.0,
	})
	require.NoError(t, err)

	assert.Greater(t, result.Prob("likely"), result.Prob("middling"))
	assert.Greater(t, result.Prob("middling"), result.Prob("unlikely"))

	var sum float64
	for _, p := range result.Probabilities() {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestRenormalize_RejectsZeroScore(t *testing.T) {
	_, err := renormalize(map[string]float64{"a": 0, "b": -1})
	assert.ErrorIs(t, err, ErrDegenerateScore)
}

func TestResult_BestTieBreaksLexicographically(t *testing.T) {
	r := Result{probs: map[string]float64{"zebra": 0.4, "apple": 0.4, "mango": 0.2}}
	best, p := r.Best()
	assert.Equal(t, "apple", best)
	assert.InDelta(t, 0.4, p, 1e-12)
}

func TestResult_Empty(t *testing.T) {
	var r Result
	best, p := r.Best()
	assert.Equal(t, "", best)
	assert.Equal(t, 0.0, p)
	assert.Equal(t, 0.0, r.Prob("anything"))
}
