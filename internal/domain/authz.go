package domain

// Moderation affordances for admin views. These are the single source for the
// advisory checks mirrored by clients; the admin service enforces the same
// rules authoritatively.

// CanBanUser reports whether target may be banned. Admin accounts cannot be
// banned.
func CanBanUser(target *User) bool {
	return target != nil && !target.IsAdmin()
}

// CanUnbanUser reports whether target may be unbanned.
func CanUnbanUser(target *User) bool {
	return target != nil
}

// CanPromoteUser reports whether target may be promoted to admin. Banned
// accounts cannot be promoted.
func CanPromoteUser(target *User) bool {
	return target != nil && !target.Banned
}
