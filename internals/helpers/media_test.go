package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aidjourney_backend/internals/configs"
)

func TestPublicImageURL(t *testing.T) {
	old := configs.MediaBaseURL
	configs.MediaBaseURL = "https://api.example.org/media/"
	defer func() { configs.MediaBaseURL = old }()

	assert.Equal(t, "", PublicImageURL(""))
	assert.Equal(t, "https://api.example.org/media/banners/x.webp", PublicImageURL("banners/x.webp"))
	assert.Equal(t, "https://api.example.org/media/banners/x.webp", PublicImageURL("/banners/x.webp"))
	// already-absolute values pass through untouched
	assert.Equal(t, "https://cdn.example.org/a.webp", PublicImageURL("https://cdn.example.org/a.webp"))
}
