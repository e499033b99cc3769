package faq

import (
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Matcher scores a user utterance against FAQ records. The score per
// record combines three signals:
//   - the question appearing verbatim inside the message (+1.0)
//   - keyword/tag overlap, capped so tag-heavy records cannot dominate
//     (+min(2.0, 0.5 per hit))
//   - a fuzzy sequence-matching ratio for paraphrases (+[0,1])
//
// A record wins only with a strictly higher score, so the first record in
// cache order takes a tie.
type Matcher struct {
	threshold float64
}

func NewMatcher(threshold float64) *Matcher {
	return &Matcher{threshold: threshold}
}

// FindBestAnswer returns the answer of the best-scoring record, or false
// when no record reaches the confidence threshold.
func (m *Matcher) FindBestAnswer(userText string, records []Record) (string, bool) {
	userLower := strings.ToLower(userText)

	best := ""
	bestScore := 0.0

	for _, rec := range records {
		question := strings.ToLower(rec.Question)

		score := 0.0
		if question != "" && strings.Contains(userLower, question) {
			score += 1.0
		}

		overlap := 0
		for _, term := range append(append([]string{}, rec.Keywords...), rec.Tags...) {
			termLower := strings.ToLower(term)
			if termLower != "" && strings.Contains(userLower, termLower) {
				overlap++
			}
		}
		score += math.Min(2.0, float64(overlap)*0.5)

		if question != "" {
			score += similarityRatio(userLower, question)
		}

		if score > bestScore {
			bestScore = score
			best = rec.Answer
		}
	}

	if bestScore >= m.threshold {
		return best, true
	}
	return "", false
}

// similarityRatio is a character-level sequence-matching ratio in [0,1].
func similarityRatio(a, b string) float64 {
	sm := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return sm.Ratio()
}
