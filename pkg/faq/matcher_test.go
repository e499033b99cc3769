package faq

import (
	"testing"
)

func TestFindBestAnswer(t *testing.T) {
	records := []Record{
		{
			Question: "what is your refund policy",
			Answer:   "Refunds within 7 days.",
			Keywords: []string{"refund"},
		},
		{
			Question: "how do i track my order",
			Answer:   "Use the Orders section.",
			Keywords: []string{"track", "order"},
			Tags:     []string{"shipping"},
		},
	}

	tests := []struct {
		name       string
		userText   string
		records    []Record
		wantAnswer string
		wantOk     bool
	}{
		{
			name:       "verbatim question with keyword",
			userText:   "hello, what is your refund policy?",
			records:    records,
			wantAnswer: "Refunds within 7 days.",
			wantOk:     true,
		},
		{
			name:       "keywords and tags overlap",
			userText:   "how do i track my order shipping status",
			records:    records,
			wantAnswer: "Use the Orders section.",
			wantOk:     true,
		},
		{
			name:     "unrelated text stays below threshold",
			userText: "zzzz qqqq xxxx",
			records:  records,
			wantOk:   false,
		},
		{
			name:     "empty cache returns nothing",
			userText: "what is your refund policy",
			records:  nil,
			wantOk:   false,
		},
	}

	m := NewMatcher(1.4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := m.FindBestAnswer(tt.userText, tt.records)

			if ok != tt.wantOk {
				t.Errorf("ok = %v, want %v", ok, tt.wantOk)
			}
			if tt.wantOk && answer != tt.wantAnswer {
				t.Errorf("answer = %q, want %q", answer, tt.wantAnswer)
			}
		})
	}
}

func TestFindBestAnswerTieBreak(t *testing.T) {
	// Identical records produce identical scores; a new best must be
	// strictly higher, so the first record in cache order wins the tie.
	records := []Record{
		{Question: "what is your refund policy", Answer: "first", Keywords: []string{"refund"}},
		{Question: "what is your refund policy", Answer: "second", Keywords: []string{"refund"}},
	}

	m := NewMatcher(1.4)
	answer, ok := m.FindBestAnswer("what is your refund policy", records)
	if !ok {
		t.Fatal("expected a match")
	}
	if answer != "first" {
		t.Errorf("answer = %q, want %q (first record wins ties)", answer, "first")
	}
}

func TestFindBestAnswerOverlapCap(t *testing.T) {
	// Six keyword hits would score 3.0 uncapped; the cap holds the
	// overlap term at 2.0. The question shares no characters with the
	// user text, so the similarity term contributes nothing.
	records := []Record{{
		Question: "qqqqqqqq",
		Answer:   "spam",
		Keywords: []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"},
	}}
	userText := "alpha beta gamma delta epsilon zeta"

	if _, ok := NewMatcher(2.5).FindBestAnswer(userText, records); ok {
		t.Error("capped overlap score should stay below 2.5")
	}
	if _, ok := NewMatcher(1.4).FindBestAnswer(userText, records); !ok {
		t.Error("capped overlap score should still reach 1.4")
	}
}

func TestSimilarityRatioBounds(t *testing.T) {
	if got := similarityRatio("abc", "abc"); got != 1.0 {
		t.Errorf("identical strings ratio = %v, want 1.0", got)
	}
	if got := similarityRatio("abc", "xyz"); got != 0.0 {
		t.Errorf("disjoint strings ratio = %v, want 0.0", got)
	}
}
