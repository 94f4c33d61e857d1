package classifier

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNotTrained is returned by Classify when the store holds zero training
// examples. The empirical prior divides by the total example count, so the
// computation is undefined until at least one example exists.
var ErrNotTrained = errors.New("classifier has no trained examples")

// ErrDegenerateScore is returned when the probability math would divide by
// zero or take the log of a non-positive value. This never happens under
// realistic configurations (it requires an empty token set combined with a
// zero log-prior, or a half-deleted category) and is reported explicitly
// rather than letting NaN propagate.
var ErrDegenerateScore = errors.New("degenerate probability state")

// Engine computes posterior distributions from counter state. It is pure
// read-side: nothing it does mutates the store.
type Engine struct {
	vocab         *Vocabulary
	counts        *Categories
	k             float64
	uniformPriors bool
}

// NewEngine creates a probability engine over the given counter views.
// k is the Laplace smoothing constant.
func NewEngine(vocab *Vocabulary, counts *Categories, k float64, uniformPriors bool) *Engine {
	return &Engine{vocab: vocab, counts: counts, k: k, uniformPriors: uniformPriors}
}

// Posterior computes the probability distribution over all known categories
// for tokens.
//
// Per category c the raw log score is
//
//	log(prior(c)) + Σ_t log((occurrences(c,t) + k) / (tokenTotal(c) + k*V))
//
// where V is the vocabulary smoothing size. The raw scores are then rescaled
// into a distribution by dividing their sum N by each score and normalizing
// the quotients. Dividing one negative number by another keeps every
// quotient positive, and a less-negative (more likely) score yields a larger
// quotient, so the rescaling preserves the ranking. This is deliberately not
// a log-sum-exp softmax; it is a ratio-preserving rescaling of the log
// scores.
func (e *Engine) Posterior(tokens []string) (Result, error) {
	total, err := e.counts.TotalExamples()
	if err != nil {
		return Result{}, err
	}
	if total < 1 {
		return Result{}, ErrNotTrained
	}

	names, err := e.counts.Names()
	if err != nil {
		return Result{}, err
	}

	v, err := e.vocab.SmoothingSize()
	if err != nil {
		return Result{}, err
	}

	raw := make(map[string]float64, len(names))
	for _, name := range names {
		var logPrior float64
		if e.uniformPriors {
			logPrior = math.Log(1 / float64(len(names)))
		} else {
			n, err := e.counts.ExampleCount(name)
			if err != nil {
				return Result{}, err
			}
			if n < 1 {
				// Registry entry vanished between Names and here
				// (torn read during a concurrent untrain).
				return Result{}, fmt.Errorf("category %q has no examples: %w", name, ErrDegenerateScore)
			}
			logPrior = math.Log(float64(n) / float64(total))
		}

		tokenTotal, err := e.counts.CategoryTokenTotal(name)
		if err != nil {
			return Result{}, err
		}
		denominator := float64(tokenTotal) + e.k*v
		if denominator <= 0 {
			return Result{}, fmt.Errorf("category %q has smoothing denominator %g: %w", name, denominator, ErrDegenerateScore)
		}

		logLikelihood := 0.0
		for _, token := range tokens {
			n, err := e.counts.OccurrenceCount(name, token)
			if err != nil {
				return Result{}, err
			}
			logLikelihood += math.Log((float64(n) + e.k) / denominator)
		}

		raw[name] = logLikelihood + logPrior
	}

	return renormalize(raw)
}

// renormalize converts raw log scores into a distribution summing to 1.
// N = Σ scores; each score s becomes N/s, and the quotients are normalized
// by their own sum. A score of exactly 0 would divide by zero and is
// rejected as degenerate.
func renormalize(raw map[string]float64) (Result, error) {
	var n float64
	for name, score := range raw {
		if score == 0 {
			return Result{}, fmt.Errorf("category %q has zero log score: %w", name, ErrDegenerateScore)
		}
		n += score
	}

	intermediate := make(map[string]float64, len(raw))
	var r float64
	for name, score := range raw {
		q := n / score
		intermediate[name] = q
		r += q
	}

	probs := make(map[string]float64, len(intermediate))
	for name, q := range intermediate {
		probs[name] = q / r
	}
	return Result{probs: probs}, nil
}

// Result is a posterior probability distribution over categories.
type Result struct {
	probs map[string]float64
}

// Probabilities returns the category→probability mapping. Callers must treat
// the returned map as read-only.
func (r Result) Probabilities() map[string]float64 { return r.probs }

// Prob returns the probability for category (0 if unknown).
func (r Result) Prob(category string) float64 { return r.probs[category] }

// Len returns the number of categories in the distribution.
func (r Result) Len() int { return len(r.probs) }

// Best returns the category with the highest probability and that
// probability. Ties break toward the lexicographically smallest category so
// the answer is deterministic. An empty result returns ("", 0).
func (r Result) Best() (string, float64) {
	names := make([]string, 0, len(r.probs))
	for name := range r.probs {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestProb := "", 0.0
	for _, name := range names {
		if p := r.probs[name]; p > bestProb {
			best, bestProb = name, p
		}
	}
	return best, bestProb
}
