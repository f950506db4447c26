package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskFloatRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	a := New(strings.NewReader("abc\n150\n  42.5 \n"), &out)

	v, err := a.AskFloat("Meter? ", Float(0), Float(100))
	require.NoError(t, err)
	assert.Equal(t, 42.5, v)

	s := out.String()
	assert.Equal(t, 3, strings.Count(s, "Meter? "))
	assert.Contains(t, s, "Please enter a valid number")
	assert.Contains(t, s, "between 0 and 100")
}

func TestAskFloatOpenBounds(t *testing.T) {
	a := New(strings.NewReader("-7.25\n"), &bytes.Buffer{})
	v, err := a.AskFloat("? ", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, -7.25, v)
}

func TestAskFloatRejectsNaN(t *testing.T) {
	a := New(strings.NewReader("NaN\n3\n"), &bytes.Buffer{})
	v, err := a.AskFloat("? ", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestAskIntTruncates(t *testing.T) {
	a := New(strings.NewReader("899.9\n-0.5\n"), &bytes.Buffer{})

	v, err := a.AskInt("MF? ", Int(0), Int(900))
	require.NoError(t, err)
	assert.Equal(t, 899, v)

	v, err = a.AskInt("MF? ", nil, Int(900))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestAskIntBoundsCheckBeforeTruncation(t *testing.T) {
	a := New(strings.NewReader("900.5\n900\n"), &bytes.Buffer{})
	v, err := a.AskInt("MF? ", Int(0), Int(900))
	require.NoError(t, err)
	assert.Equal(t, 900, v)
}

func TestAskReturnsErrNoInputAtEOF(t *testing.T) {
	a := New(strings.NewReader("x\n"), &bytes.Buffer{})
	_, err := a.AskInt("? ", nil, nil)
	assert.ErrorIs(t, err, ErrNoInput)
}
