package common

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

func TestParseChoice(t *testing.T) {
	actual, err := parseChoice(" 2 ", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, actual)

	_, err = parseChoice("3", 3)
	assert.EqualError(t, err, "illegal-choice: 3 is not between 0 and 2")

	_, err = parseChoice("-1", 3)
	assert.Error(t, err)

	_, err = parseChoice("abc", 3)
	assert.EqualError(t, err, "illegal-choice: abc")
}

func TestRequestChoice_withoutChoices(t *testing.T) {
	_, err := requestChoice("port", nil, io.NopCloser(strings.NewReader("")), &bytes.Buffer{})

	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestRequestChoice_singleChoiceDoesNotPrompt(t *testing.T) {
	out := &bytes.Buffer{}

	actual, err := requestChoice("port", []string{"only"}, io.NopCloser(strings.NewReader("")), out)

	require.NoError(t, err)
	assert.Equal(t, 0, actual)
	assert.Empty(t, out.String())
}
