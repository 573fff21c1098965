// Package access holds the per-resource authorization rules as pure
// predicates, so the policy table is testable apart from the HTTP wiring
// that enforces it.
package access

import "github.com/gofiber/fiber/v2"

// Policy classes for content resources.
type Policy int

const (
	// GET for anyone; every other method denied on this surface.
	PublicRead Policy = iota
	// All methods require an authenticated staff caller.
	StaffCRUD
	// Singleton surfaces: GET for anyone, PUT/PATCH for staff.
	MixedSingleton
	// POST for anyone (contact form); GET/DELETE for staff.
	PublicCreateAdminRead
)

type Caller struct {
	Authenticated bool
	Staff         bool
}

var Anonymous = Caller{}

func isRead(method string) bool {
	return method == fiber.MethodGet || method == fiber.MethodHead
}

// Allowed decides (resource policy, HTTP method, caller) → allow/deny.
func Allowed(p Policy, method string, caller Caller) bool {
	staff := caller.Authenticated && caller.Staff
	switch p {
	case PublicRead:
		return isRead(method)
	case StaffCRUD:
		return staff
	case MixedSingleton:
		if isRead(method) {
			return true
		}
		return staff && (method == fiber.MethodPut || method == fiber.MethodPatch)
	case PublicCreateAdminRead:
		if method == fiber.MethodPost {
			return true
		}
		return staff && (isRead(method) || method == fiber.MethodDelete)
	default:
		return false
	}
}

// IncludeInactive reproduces the role-dependent queryset rule: only a
// staff caller performing a non-read request sees inactive rows. It is a
// function of (staff AND method-is-not-read), not of identity alone.
func IncludeInactive(staff bool, method string) bool {
	return staff && !isRead(method)
}
