package models

import "time"

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

type Event struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Location      string      `json:"location"`
	StartTime     time.Time   `json:"start_time"`
	EndTime       time.Time   `json:"end_time"`
	MaxAttendees  *int        `json:"max_attendees,omitempty"`
	Status        EventStatus `json:"status"`
	ClubID        string      `json:"club_id"`
	ClubName      string      `json:"club_name,omitempty"`
	CreatedByID   string      `json:"created_by_id"`
	AttendeeCount int         `json:"attendee_count"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type EventInput struct {
	Title        string
	Description  string
	Location     string
	StartTime    time.Time
	EndTime      time.Time
	MaxAttendees *int
	ClubID       string
	CreatedByID  string
}

// StatusAt derives the display status of an event at the given moment.
func (e *Event) StatusAt(now time.Time) EventStatus {
	switch {
	case now.Before(e.StartTime):
		return EventUpcoming
	case now.Before(e.EndTime):
		return EventOngoing
	default:
		return EventCompleted
	}
}

// Full reports whether the event has no free places left for count registrations.
func (e *Event) Full(count int) bool {
	return e.MaxAttendees != nil && count >= *e.MaxAttendees
}
