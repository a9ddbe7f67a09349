package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

func StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ListQuestionsHandler serves every question without its answer.
func ListQuestionsHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.ListRedacted())
	}
}

// GetQuestionHandler serves one question without its answer. Ids that are
// not integers are reported the same way as unknown ids.
func GetQuestionHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "questionID"))
		if err != nil {
			writeErr(w, http.StatusNotFound, msgQuestionNotFound)
			return
		}
		q, err := store.Get(id)
		if errors.Is(err, quiz.ErrNotFound) {
			writeErr(w, http.StatusNotFound, msgQuestionNotFound)
			return
		}
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, q.Redact())
	}
}
