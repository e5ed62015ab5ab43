package models

import "time"

type MembershipStatus string

const MembershipActive MembershipStatus = "ACTIVE"

type Membership struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	ClubID      string           `json:"club_id"`
	IsPresident bool             `json:"is_president"`
	Status      MembershipStatus `json:"status"`
	JoinedAt    time.Time        `json:"joined_at"`
}

// Member is a user as seen through one of their club memberships.
type Member struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	StudentID   *string   `json:"student_id,omitempty"`
	IsPresident bool      `json:"is_president"`
	JoinedAt    time.Time `json:"joined_at"`
}
