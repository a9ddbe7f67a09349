package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// ParseQuestion builds a Question from one dataset record. The record must
// be an object with an integer "id" and an "answer" of a known shape.
func ParseQuestion(raw json.RawMessage) (Question, error) {
	fields, err := decodeObject(bytes.TrimSpace(raw))
	if err != nil {
		return Question{}, fmt.Errorf("question record: %w", err)
	}
	var (
		q         Question
		haveID    bool
		answerRaw json.RawMessage
	)
	for _, f := range fields {
		switch f.Key {
		case "answer":
			answerRaw = f.Value
			continue
		case "id":
			id, ok := parseID(f.Value)
			if !ok {
				return Question{}, fmt.Errorf("question id %s is not an integer", f.Value)
			}
			q.ID, haveID = id, true
		}
		q.Fields = append(q.Fields, f)
	}
	if !haveID {
		return Question{}, fmt.Errorf("question record has no id")
	}
	if answerRaw == nil {
		return Question{}, fmt.Errorf("question %d has no answer", q.ID)
	}
	q.Answer = ParseAnswer(answerRaw)
	if q.Answer.Kind == KindInvalid {
		return Question{}, fmt.Errorf("question %d: answer must be a string, an array of strings or an object of strings", q.ID)
	}
	return q, nil
}

// ParseQuestions parses a JSON array of question records.
func ParseQuestions(raw []byte) ([]Question, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("question list: %w", err)
	}
	out := make([]Question, 0, len(records))
	for i, rec := range records {
		q, err := ParseQuestion(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, q)
	}
	return out, nil
}

// parseID accepts JSON numbers with no fractional part, so 4 and 4.0 are
// the same id while "4" is not an id at all.
func parseID(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
