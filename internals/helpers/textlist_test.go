package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommaList(t *testing.T) {
	assert.Equal(t,
		[]string{"education", "health", "environment"},
		ParseCommaList("education, health , ,environment"))
	assert.Equal(t, []string{}, ParseCommaList(""))
	assert.Equal(t, []string{}, ParseCommaList(" , , "))
}

func TestParseLines(t *testing.T) {
	assert.Equal(t,
		[]string{"first point", "second point"},
		ParseLines("first point\r\n\r\n  second point  \n"))
	assert.Equal(t, []string{}, ParseLines("\n\n"))
}

// Parsing serialized output must be a no-op.
func TestTextlistRoundTrip(t *testing.T) {
	words := ParseCommaList("  a ,b,, c  ")
	assert.Equal(t, words, ParseCommaList(JoinCommaList(words)))

	points := ParseLines("one\n\n two \nthree")
	assert.Equal(t, points, ParseLines(JoinLines(points)))
}
