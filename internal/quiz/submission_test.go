package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBatchRejectsNonArrays(t *testing.T) {
	for _, body := range []string{
		`{"id":1,"answer":"Invalid Answer Format"}`,
		`"answers"`,
		`42`,
		`null`,
		``,
		`[{"id":1`,
		`[] {"id":1}`,
		`[{"id":4,"answer":"bangkok"}]garbage`,
		`[][]`,
	} {
		_, err := DecodeBatch(strings.NewReader(body))
		assert.ErrorIs(t, err, ErrInvalidSubmission, "body %q", body)
	}
}

func TestDecodeBatch(t *testing.T) {
	subs, err := DecodeBatch(strings.NewReader(`[
		{"id":4,"answer":"bangkok"},
		{"id":5,"answer":["GCP","Azure","AWS"]},
		{"answer":"no id"},
		{"id":"6","answer":"string id"},
		7,
		{"id":6,"answer":{"NoSQL":"Unstructured data","SQL":"Structured data"}},
		{"id":3}
	]`))
	require.NoError(t, err)
	require.Len(t, subs, 7)

	assert.Equal(t, Submission{ID: 4, Answer: Answer{Kind: KindChoice, Text: "bangkok"}}, subs[0])
	assert.Equal(t, []string{"GCP", "Azure", "AWS"}, subs[1].Answer.Items)
	assert.True(t, subs[2].BadID)
	assert.True(t, subs[3].BadID)
	assert.True(t, subs[4].BadID)
	assert.Equal(t, KindMatching, subs[5].Answer.Kind)
	assert.Equal(t, []string{"Unstructured data", "Structured data"}, subs[5].Answer.Values())
	assert.False(t, subs[6].BadID)
	assert.Equal(t, KindInvalid, subs[6].Answer.Kind)
}

func TestDecodeBatchEmpty(t *testing.T) {
	subs, err := DecodeBatch(strings.NewReader(" [] \n"))
	require.NoError(t, err)
	assert.Empty(t, subs)
}
