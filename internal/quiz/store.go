package quiz

import "errors"

var ErrNotFound = errors.New("question not found")

// Store is the read-only question set a server is started with.
type Store interface {
	// All returns full records, answers included.
	All() []Question
	// ListRedacted returns the student-safe listing in dataset order.
	ListRedacted() []Redacted
	Get(id int) (Question, error)
}

type memoryStore struct {
	questions []Question
	byID      map[int]int
}

// NewMemoryStore indexes qs by id. The first question wins when ids repeat.
func NewMemoryStore(qs []Question) Store {
	m := &memoryStore{
		questions: make([]Question, len(qs)),
		byID:      make(map[int]int, len(qs)),
	}
	copy(m.questions, qs)
	for i, q := range m.questions {
		if _, ok := m.byID[q.ID]; !ok {
			m.byID[q.ID] = i
		}
	}
	return m
}

func (m *memoryStore) All() []Question {
	out := make([]Question, len(m.questions))
	copy(out, m.questions)
	return out
}

func (m *memoryStore) ListRedacted() []Redacted {
	out := make([]Redacted, 0, len(m.questions))
	for _, q := range m.questions {
		out = append(out, q.Redact())
	}
	return out
}

func (m *memoryStore) Get(id int) (Question, error) {
	i, ok := m.byID[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	return m.questions[i], nil
}
