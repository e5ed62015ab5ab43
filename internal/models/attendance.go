package models

import "time"

type AttendanceStatus string

const AttendanceRegistered AttendanceStatus = "registered"

type Attendance struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	EventID   string           `json:"event_id"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// Attendee is a user as seen through their registration for an event.
type Attendee struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	StudentID    *string          `json:"student_id,omitempty"`
	Status       AttendanceStatus `json:"status"`
	RegisteredAt time.Time        `json:"registered_at"`
}
