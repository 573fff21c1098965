package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World", 0))
	assert.Equal(t, "education-for-all", Slugify("  Education -- for / ALL!  ", 0))
	assert.Equal(t, "ecole", Slugify("École", 0))
	assert.Equal(t, "item", Slugify("!!!", 0))
	assert.Equal(t, "item", Slugify("", 0))
}

func TestSlugifyMaxLen(t *testing.T) {
	s := Slugify(strings.Repeat("word ", 50), 20)
	assert.LessOrEqual(t, len(s), 20)
	assert.False(t, strings.HasSuffix(s, "-"))
}
