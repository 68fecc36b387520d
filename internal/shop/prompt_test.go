package shop

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestLineReturnsEOFWhenInputRunsOut(t *testing.T) {
	p, _ := scripted("")
	_, err := p.Line("? ")
	assert.Equal(t, io.EOF, err)
}

func TestNonEmptyRepromptsOnEmptyInput(t *testing.T) {
	p, out := scripted("\n\nGlobal Suppliers\n")
	got, err := p.NonEmpty("name: ", "must not be empty")
	require.NoError(t, err)
	assert.Equal(t, "Global Suppliers", got)
	assert.Equal(t, 2, strings.Count(out.String(), "must not be empty"))
}

func TestIntRepromptsOnNonNumeric(t *testing.T) {
	p, out := scripted("abc\n1.5\n 42 \n")
	got, err := p.Int("qty: ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input. Please enter a number."))
}

func TestYesNoAcceptedTokens(t *testing.T) {
	for input, want := range map[string]bool{
		"yes\n": true,
		"y\n":   true,
		"YES\n": true,
		"no\n":  false,
		"n\n":   false,
		"No\n":  false,
	} {
		p, _ := scripted(input)
		got, err := p.YesNo("more? ")
		require.NoError(t, err)
		assert.Equalf(t, want, got, "input %q", input)
	}
}

func TestYesNoRepromptsOnUnknownToken(t *testing.T) {
	p, out := scripted("maybe\nok\nyes\n")
	got, err := p.YesNo("more? ")
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input. Please enter 'yes' or 'no'."))
}
