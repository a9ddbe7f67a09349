package quiz

import (
	"bytes"
	"encoding/json"
)

// Kind is the comparison rule of a question, fixed by the shape of its
// stored answer when the question is loaded.
type Kind int

const (
	KindInvalid Kind = iota
	// KindChoice answers are plain strings, compared case-insensitively.
	KindChoice
	// KindMultiSelect answers are string arrays, compared as sets.
	KindMultiSelect
	// KindMatching answers are key -> string objects, compared by value
	// sequence.
	KindMatching
)

func (k Kind) String() string {
	switch k {
	case KindChoice:
		return "choice"
	case KindMultiSelect:
		return "multi_select"
	case KindMatching:
		return "matching"
	default:
		return "invalid"
	}
}

// Pair is one key/value entry of a matching answer.
type Pair struct {
	Key   string
	Value string
}

// Answer is a decoded answer payload. Only the field that belongs to Kind
// is populated.
type Answer struct {
	Kind  Kind
	Text  string   // KindChoice
	Items []string // KindMultiSelect
	Pairs []Pair   // KindMatching, in enumeration order
}

// Values returns the matching values in enumeration order.
func (a Answer) Values() []string {
	out := make([]string, len(a.Pairs))
	for i, p := range a.Pairs {
		out[i] = p.Value
	}
	return out
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case KindChoice:
		return json.Marshal(a.Text)
	case KindMultiSelect:
		if a.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Items)
	case KindMatching:
		fields := make([]Field, 0, len(a.Pairs))
		for _, p := range a.Pairs {
			v, err := json.Marshal(p.Value)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Key: p.Key, Value: v})
		}
		return marshalFields(fields)
	default:
		return []byte("null"), nil
	}
}

// Field is a display field of a question record, kept verbatim.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Question is an immutable quiz question. Fields holds every key of the
// source record except "answer", in document order.
type Question struct {
	ID     int
	Answer Answer
	Fields []Field
}

// Kind reports the comparison rule of the question.
func (q Question) Kind() Kind { return q.Answer.Kind }

// Redact returns the public view of q.
func (q Question) Redact() Redacted {
	return Redacted{ID: q.ID, Fields: q.Fields}
}

func (q Question) MarshalJSON() ([]byte, error) {
	ans, err := json.Marshal(q.Answer)
	if err != nil {
		return nil, err
	}
	fields := make([]Field, 0, len(q.Fields)+1)
	fields = append(fields, q.Fields...)
	fields = append(fields, Field{Key: "answer", Value: ans})
	return marshalFields(fields)
}

// Redacted is a question with its answer removed, safe for public listing.
type Redacted struct {
	ID     int
	Fields []Field
}

func (r Redacted) MarshalJSON() ([]byte, error) { return marshalFields(r.Fields) }

// Submission is one submitted answer of a batch. BadID is set when the
// submitted id is missing or not an integer; such a submission never
// matches a question.
type Submission struct {
	ID     int
	BadID  bool
	Answer Answer
}

type Result struct {
	Points int `json:"points"`
}

func marshalFields(fields []Field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if len(f.Value) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
