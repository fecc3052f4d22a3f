// Package role owns the closed role set and the static permission
// table behind the console's navigation and staff management.
package role

import "strings"

type Role string

const (
	Developer Role = "developer"
	Admin     Role = "admin"
	Booking   Role = "booking"
)

// Default is what Resolve hands back for anything outside the closed
// set. Kept permissive to match the deployed behavior; changing the
// policy to least-privilege is a one-line edit here.
const Default = Admin

// Navigation item ids, in sidebar order.
const (
	NavDashboard = "dashboard"
	NavBookings  = "bookings"
	NavServices  = "services"
	NavMedia     = "media"
	NavReviews   = "reviews"
	NavFeedback  = "feedback"
	NavStaff     = "staff"
	NavAnalytics = "analytics"
)

// permissions is the static table: visible navigation items (ordered)
// and the roles each role may assign to others. The nav sets nest:
// developer covers admin covers booking.
var permissions = map[Role]struct {
	nav        []string
	assignable []Role
}{
	Developer: {
		nav:        []string{NavDashboard, NavBookings, NavServices, NavMedia, NavReviews, NavFeedback, NavStaff, NavAnalytics},
		assignable: []Role{Admin, Booking},
	},
	Admin: {
		nav:        []string{NavDashboard, NavBookings, NavServices, NavMedia, NavReviews, NavFeedback, NavAnalytics},
		assignable: []Role{Booking},
	},
	Booking: {
		nav:        []string{NavDashboard, NavBookings},
		assignable: nil,
	},
}

// Resolve maps a raw role value to the closed set. Unrecognized or
// missing values resolve to Default.
func Resolve(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case Developer:
		return Developer
	case Admin:
		return Admin
	case Booking:
		return Booking
	default:
		return Default
	}
}

// Known reports whether raw names a member of the closed set exactly.
func Known(raw string) bool {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case Developer, Admin, Booking:
		return true
	}
	return false
}

// NavigationFor returns the ordered navigation item ids visible to r.
// The slice is a copy; callers may mutate it.
func NavigationFor(r Role) []string {
	entry, ok := permissions[r]
	if !ok {
		entry = permissions[Default]
	}

	out := make([]string, len(entry.nav))
	copy(out, entry.nav)
	return out
}

// CanView reports whether item is in r's navigation table. Items not
// listed must not render for that role.
func CanView(r Role, item string) bool {
	entry, ok := permissions[r]
	if !ok {
		entry = permissions[Default]
	}

	for _, id := range entry.nav {
		if id == item {
			return true
		}
	}
	return false
}

// Assignable returns the roles r may hand out to other accounts.
func Assignable(r Role) []Role {
	entry, ok := permissions[r]
	if !ok {
		entry = permissions[Default]
	}

	out := make([]Role, len(entry.assignable))
	copy(out, entry.assignable)
	return out
}

// CanAssign reports whether actor may assign target to another account.
func CanAssign(actor Role, target Role) bool {
	for _, allowed := range Assignable(actor) {
		if allowed == target {
			return true
		}
	}
	return false
}
