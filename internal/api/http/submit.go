package http

import (
	"log"
	"net/http"

	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

const maxSubmissionBytes = 1 << 20

// SubmitHandler scores a batch of answers. A body that is not a JSON array
// is rejected before any scoring.
func SubmitHandler(store quiz.Store, scorer *grading.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := quiz.DecodeBatch(http.MaxBytesReader(w, r.Body, maxSubmissionBytes))
		if err != nil {
			writeErr(w, http.StatusBadRequest, msgInvalidSubmission)
			return
		}
		res := scorer.Score(store.All(), subs)
		log.Printf("submit: %d answers, %d points", len(subs), res.Points)
		writeJSON(w, http.StatusOK, res)
	}
}
