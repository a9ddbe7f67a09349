package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// ErrInvalidSubmission is returned when a submission body is not a JSON
// array of answers.
var ErrInvalidSubmission = errors.New("invalid submission format: expected an array of answers")

// DecodeBatch reads a JSON array of {id, answer} objects. Elements that are
// not objects, or whose id is not an integer, are kept so they count toward
// the batch but can never score.
func DecodeBatch(r io.Reader) ([]Submission, error) {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, ErrInvalidSubmission
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrInvalidSubmission
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrInvalidSubmission
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrInvalidSubmission
	}
	out := make([]Submission, 0, len(items))
	for _, it := range items {
		out = append(out, decodeSubmission(it))
	}
	return out, nil
}

func decodeSubmission(raw json.RawMessage) Submission {
	fields, err := decodeObject(bytes.TrimSpace(raw))
	if err != nil {
		return Submission{BadID: true}
	}
	sub := Submission{BadID: true}
	for _, f := range fields {
		switch f.Key {
		case "id":
			id, ok := parseID(f.Value)
			sub.ID, sub.BadID = id, !ok
		case "answer":
			sub.Answer = ParseAnswer(f.Value)
		}
	}
	return sub
}
