package access

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

var (
	staff     = Caller{Authenticated: true, Staff: true}
	plainUser = Caller{Authenticated: true}
)

func TestPublicRead(t *testing.T) {
	assert.True(t, Allowed(PublicRead, fiber.MethodGet, Anonymous))
	assert.True(t, Allowed(PublicRead, fiber.MethodHead, Anonymous))
	assert.False(t, Allowed(PublicRead, fiber.MethodPost, Anonymous))
	assert.False(t, Allowed(PublicRead, fiber.MethodDelete, staff), "no admin surface through the public endpoint")
}

func TestStaffCRUD(t *testing.T) {
	for _, m := range []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete} {
		assert.True(t, Allowed(StaffCRUD, m, staff), m)
		assert.False(t, Allowed(StaffCRUD, m, Anonymous), m)
		assert.False(t, Allowed(StaffCRUD, m, plainUser), m)
	}
}

func TestMixedSingleton(t *testing.T) {
	assert.True(t, Allowed(MixedSingleton, fiber.MethodGet, Anonymous))
	assert.True(t, Allowed(MixedSingleton, fiber.MethodPut, staff))
	assert.True(t, Allowed(MixedSingleton, fiber.MethodPatch, staff))
	assert.False(t, Allowed(MixedSingleton, fiber.MethodPut, Anonymous))
	assert.False(t, Allowed(MixedSingleton, fiber.MethodPut, plainUser))
	assert.False(t, Allowed(MixedSingleton, fiber.MethodDelete, staff))
}

func TestPublicCreateAdminRead(t *testing.T) {
	assert.True(t, Allowed(PublicCreateAdminRead, fiber.MethodPost, Anonymous))
	assert.True(t, Allowed(PublicCreateAdminRead, fiber.MethodGet, staff))
	assert.True(t, Allowed(PublicCreateAdminRead, fiber.MethodDelete, staff))
	assert.False(t, Allowed(PublicCreateAdminRead, fiber.MethodGet, Anonymous))
	assert.False(t, Allowed(PublicCreateAdminRead, fiber.MethodPut, staff), "messages are immutable")
}

func TestIncludeInactive(t *testing.T) {
	// Filtering depends on (staff AND non-read), not on identity alone.
	assert.True(t, IncludeInactive(true, fiber.MethodPost))
	assert.True(t, IncludeInactive(true, fiber.MethodDelete))
	assert.False(t, IncludeInactive(true, fiber.MethodGet))
	assert.False(t, IncludeInactive(false, fiber.MethodPost))
	assert.False(t, IncludeInactive(false, fiber.MethodGet))
}
