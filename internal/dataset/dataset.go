// Package dataset loads the question set a server is started with.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

// ErrInvalid wraps every content problem of a dataset file.
var ErrInvalid = errors.New("invalid question dataset")

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://questions.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// LoadFile reads, validates and parses a question dataset. Files ending in
// .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadFile(path string) ([]quiz.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question dataset: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalid, err)
		}
	}
	return Parse(data)
}

// Parse validates a JSON dataset and converts it to questions. Ids must be
// unique.
func Parse(data []byte) ([]quiz.Question, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	qs, err := quiz.ParseQuestions(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	seen := make(map[int]struct{}, len(qs))
	for _, q := range qs {
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", ErrInvalid, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return qs, nil
}

func validate(data []byte) error {
	sch, err := schema()
	if err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: parse json: %v", ErrInvalid, err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
