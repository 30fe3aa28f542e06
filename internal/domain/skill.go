package domain

import "time"

// SkillStatus is the moderation state of an offered skill.
type SkillStatus string

const (
	SkillStatusPending  SkillStatus = "pending"
	SkillStatusApproved SkillStatus = "approved"
	SkillStatusRejected SkillStatus = "rejected"
)

// SkillType tags a skill record as offered by or wanted by its owner.
type SkillType string

const (
	SkillTypeOffered SkillType = "offered"
	SkillTypeWanted  SkillType = "wanted"
)

// SkillOffered is a skill a member advertises. Offered skills pass through
// admin moderation before they surface in search.
type SkillOffered struct {
	ID          string
	UserID      string
	Name        string
	Description *string
	Status      SkillStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SkillWanted is a skill a member is looking to receive. Wanted skills are
// not moderated.
type SkillWanted struct {
	ID          string
	UserID      string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SkillSearchResult is one search hit, tagged with which side it matched.
type SkillSearchResult struct {
	SkillID     string
	SkillType   SkillType
	Name        string
	Description *string
	UserID      string
	Username    string
	DisplayName string
}

// ValidSkillStatus reports whether s is a known moderation status.
func ValidSkillStatus(s SkillStatus) bool {
	switch s {
	case SkillStatusPending, SkillStatusApproved, SkillStatusRejected:
		return true
	}
	return false
}
