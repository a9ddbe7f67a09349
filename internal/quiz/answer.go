package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ParseAnswer decodes an answer payload by its JSON shape. Payloads that
// are not a string, an array of strings or an object of strings decode to
// KindInvalid.
func ParseAnswer(raw json.RawMessage) Answer {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Answer{}
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Answer{}
		}
		return Answer{Kind: KindChoice, Text: s}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Answer{}
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			var s string
			if err := json.Unmarshal(it, &s); err != nil {
				return Answer{}
			}
			out = append(out, s)
		}
		return Answer{Kind: KindMultiSelect, Items: out}
	case '{':
		fields, err := decodeObject(raw)
		if err != nil {
			return Answer{}
		}
		pairs := make([]Pair, 0, len(fields))
		for _, f := range enumerationOrder(fields) {
			var s string
			if err := json.Unmarshal(f.Value, &s); err != nil {
				return Answer{}
			}
			pairs = append(pairs, Pair{Key: f.Key, Value: s})
		}
		return Answer{Kind: KindMatching, Pairs: pairs}
	}
	return Answer{}
}

// decodeObject reads a JSON object keeping its keys in document order.
// Values are compacted. A repeated key keeps its first position and its
// last value.
func decodeObject(raw []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("not an object")
	}
	var fields []Field
	seen := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		var v bytes.Buffer
		if err := json.Compact(&v, val); err != nil {
			return nil, err
		}
		if i, dup := seen[key]; dup {
			fields[i].Value = v.Bytes()
			continue
		}
		seen[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: v.Bytes()})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after object")
	}
	return fields, nil
}

// enumerationOrder orders object keys the way the quiz datasets were
// authored against: array-index keys ascending, then the remaining keys in
// document order.
func enumerationOrder(fields []Field) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	sort.SliceStable(out, func(i, j int) bool {
		ai, aok := arrayIndex(out[i].Key)
		bi, bok := arrayIndex(out[j].Key)
		switch {
		case aok && bok:
			return ai < bi
		case aok:
			return true
		default:
			return false
		}
	})
	return out
}

// arrayIndex reports whether key is a canonical decimal integer in
// [0, 2^32-2].
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return n, true
}
