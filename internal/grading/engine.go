package grading

import (
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

// Strategy grades a single submitted answer against the canonical one.
// A strategy must not modify either answer.
type Strategy interface {
	Grade(canonical, submitted quiz.Answer) bool
}

// Scorer routes each submission by question kind to the matching Strategy
// and counts fully-correct answers. It holds no per-call state and is safe
// for concurrent use.
type Scorer struct {
	strategies map[quiz.Kind]Strategy
}

// NewScorer installs built-in strategies.
func NewScorer() *Scorer {
	return &Scorer{
		strategies: map[quiz.Kind]Strategy{
			quiz.KindChoice:      choiceStrategy{},
			quiz.KindMultiSelect: multiSelectStrategy{},
			quiz.KindMatching:    matchingStrategy{},
		},
	}
}

// Score awards one point per submission whose answer matches the first
// question with the same id. Unknown ids and mismatched answer shapes score
// nothing.
func (s *Scorer) Score(questions []quiz.Question, subs []quiz.Submission) quiz.Result {
	byID := make(map[int]int, len(questions))
	for i, q := range questions {
		if _, ok := byID[q.ID]; !ok {
			byID[q.ID] = i
		}
	}

	var res quiz.Result
	for _, sub := range subs {
		if sub.BadID {
			continue
		}
		i, ok := byID[sub.ID]
		if !ok {
			continue
		}
		q := questions[i]
		st, ok := s.strategies[q.Kind()]
		if !ok {
			continue
		}
		if st.Grade(q.Answer, sub.Answer) {
			res.Points++
		}
	}
	return res
}

// Score is a convenience wrapper around a default Scorer.
func Score(questions []quiz.Question, subs []quiz.Submission) quiz.Result {
	return defaultScorer.Score(questions, subs)
}

var defaultScorer = NewScorer()

// --- Strategies ---

type choiceStrategy struct{}

func (choiceStrategy) Grade(canonical, submitted quiz.Answer) bool {
	if submitted.Kind != quiz.KindChoice {
		return false
	}
	return foldEqual(canonical.Text, submitted.Text)
}

type multiSelectStrategy struct{}

func (multiSelectStrategy) Grade(canonical, submitted quiz.Answer) bool {
	if submitted.Kind != quiz.KindMultiSelect {
		return false
	}
	return equalStrings(sortedCopy(canonical.Items), sortedCopy(submitted.Items))
}

// matchingStrategy compares values position by position in enumeration
// order. Keys are not aligned.
type matchingStrategy struct{}

func (matchingStrategy) Grade(canonical, submitted quiz.Answer) bool {
	if submitted.Kind != quiz.KindMatching {
		return false
	}
	return equalStrings(canonical.Values(), submitted.Values())
}
