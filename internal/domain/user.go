package domain

import "time"

// UserRole distinguishes ordinary members from platform administrators.
type UserRole string

const (
	UserRoleMember UserRole = "user"
	UserRoleAdmin  UserRole = "admin"
)

// Availability captures when a member is generally free to swap.
type Availability string

const (
	AvailabilityWeekdays Availability = "weekdays"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityEvenings Availability = "evenings"
	AvailabilityMornings Availability = "mornings"
	AvailabilityAnytime  Availability = "anytime"
)

// Visibility controls whether a profile is browsable by other members.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// User is the domain model for platform members.
type User struct {
	ID           string
	Email        string
	Username     string
	Name         string
	PasswordHash string
	Location     *string
	Bio          *string
	PhotoURL     *string
	Availability Availability
	Visibility   Visibility
	Role         UserRole
	Active       bool
	Banned       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// CanParticipate reports whether the account may act on the platform at all.
func (u *User) CanParticipate() bool {
	return u != nil && u.Active && !u.Banned
}

// ValidAvailability reports whether v is one of the known availability values.
func ValidAvailability(v Availability) bool {
	switch v {
	case AvailabilityWeekdays, AvailabilityWeekends, AvailabilityEvenings, AvailabilityMornings, AvailabilityAnytime:
		return true
	}
	return false
}

// ValidVisibility reports whether v is one of the known visibility values.
func ValidVisibility(v Visibility) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}
