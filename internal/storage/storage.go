package storage

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrClubNotFound       = errors.New("club not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAlreadyMember      = errors.New("user is already a member of this club")
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrAlreadyRegistered  = errors.New("user is already registered for this event")
	ErrEventFull          = errors.New("event is full")
)
