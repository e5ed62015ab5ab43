package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"clubhub/internal/models"
	"clubhub/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clubID  = "6f9619ff-8b86-d011-b42d-00cf4fc964ff"
	userID  = "0d5b7a4e-2c2f-4a43-9a8a-6b1f7f3c2a10"
	eventID = "b8a1c0f2-3d4e-4f5a-8b6c-7d8e9f0a1b2c"
)

func newMock(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return New(db), mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func TestJoinClub(t *testing.T) {
	t.Parallel()

	joinedAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("INSERT INTO club_memberships")).
					WithArgs(userID, clubID, "ACTIVE").
					WillReturnRows(sqlmock.NewRows([]string{"id", "is_president", "joined_at"}).
						AddRow("m1", false, joinedAt))
			},
		},
		{
			name: "Duplicate pair",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("INSERT INTO club_memberships")).
					WillReturnError(&pq.Error{Code: codeUniqueViolation, Constraint: "club_memberships_user_club_key"})
			},
			wantErr: storage.ErrAlreadyMember,
		},
		{
			name: "Unknown club",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("INSERT INTO club_memberships")).
					WillReturnError(&pq.Error{Code: codeForeignKeyViolation, Constraint: "club_memberships_club_id_fkey"})
			},
			wantErr: storage.ErrClubNotFound,
		},
		{
			name: "Unknown user",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("INSERT INTO club_memberships")).
					WillReturnError(&pq.Error{Code: codeForeignKeyViolation, Constraint: "club_memberships_user_id_fkey"})
			},
			wantErr: storage.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMock(t)
			tc.mockSetup(mock)

			membership, err := s.JoinClub(context.Background(), clubID, userID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, membership)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "m1", membership.ID)
			assert.Equal(t, models.MembershipActive, membership.Status)
			assert.Equal(t, joinedAt, membership.JoinedAt)
		})
	}
}

func TestLeaveClubNotMember(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectExec(q("DELETE FROM club_memberships WHERE user_id = $1 AND club_id = $2")).
		WithArgs(userID, clubID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.LeaveClub(context.Background(), clubID, userID)
	assert.ErrorIs(t, err, storage.ErrMembershipNotFound)
}

func TestRemoveMember(t *testing.T) {
	t.Parallel()

	t.Run("deletes by surrogate id", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT id FROM club_memberships WHERE club_id = $1 AND user_id = $2 FOR UPDATE")).
			WithArgs(clubID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("m1"))
		mock.ExpectExec(q("DELETE FROM club_memberships WHERE id = $1")).
			WithArgs("m1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.RemoveMember(context.Background(), clubID, userID))
	})

	t.Run("not a member", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT id FROM club_memberships")).
			WithArgs(clubID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := s.RemoveMember(context.Background(), clubID, userID)
		assert.ErrorIs(t, err, storage.ErrMembershipNotFound)
	})
}

func TestRegisterForEvent(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	lockEvent := func(mock sqlmock.Sqlmock, maxAttendees any) {
		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT max_attendees FROM events WHERE id = $1 FOR UPDATE")).
			WithArgs(eventID).
			WillReturnRows(sqlmock.NewRows([]string{"max_attendees"}).AddRow(maxAttendees))
	}

	exists := func(mock sqlmock.Sqlmock, registered bool) {
		mock.ExpectQuery(q("SELECT EXISTS(SELECT 1 FROM attendances")).
			WithArgs(eventID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(registered))
	}

	count := func(mock sqlmock.Sqlmock, n int) {
		mock.ExpectQuery(q("SELECT COUNT(*) FROM attendances WHERE event_id = $1")).
			WithArgs(eventID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
	}

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "Success below capacity",
			mockSetup: func(mock sqlmock.Sqlmock) {
				lockEvent(mock, 2)
				exists(mock, false)
				count(mock, 1)
				mock.ExpectQuery(q("INSERT INTO attendances")).
					WithArgs(userID, eventID, "registered").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("a1", createdAt))
				mock.ExpectCommit()
			},
		},
		{
			name: "Success without capacity skips the count",
			mockSetup: func(mock sqlmock.Sqlmock) {
				lockEvent(mock, nil)
				exists(mock, false)
				mock.ExpectQuery(q("INSERT INTO attendances")).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("a1", createdAt))
				mock.ExpectCommit()
			},
		},
		{
			name: "Event not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(q("SELECT max_attendees FROM events")).
					WithArgs(eventID).
					WillReturnRows(sqlmock.NewRows([]string{"max_attendees"}))
				mock.ExpectRollback()
			},
			wantErr: storage.ErrEventNotFound,
		},
		{
			name: "Already registered",
			mockSetup: func(mock sqlmock.Sqlmock) {
				lockEvent(mock, 2)
				exists(mock, true)
				mock.ExpectRollback()
			},
			wantErr: storage.ErrAlreadyRegistered,
		},
		{
			name: "Event full",
			mockSetup: func(mock sqlmock.Sqlmock) {
				lockEvent(mock, 2)
				exists(mock, false)
				count(mock, 2)
				mock.ExpectRollback()
			},
			wantErr: storage.ErrEventFull,
		},
		{
			name: "Unique violation on insert",
			mockSetup: func(mock sqlmock.Sqlmock) {
				lockEvent(mock, nil)
				exists(mock, false)
				mock.ExpectQuery(q("INSERT INTO attendances")).
					WillReturnError(&pq.Error{Code: codeUniqueViolation, Constraint: "attendances_user_event_key"})
				mock.ExpectRollback()
			},
			wantErr: storage.ErrAlreadyRegistered,
		},
		{
			name: "Unknown user",
			mockSetup: func(mock sqlmock.Sqlmock) {
				lockEvent(mock, nil)
				exists(mock, false)
				mock.ExpectQuery(q("INSERT INTO attendances")).
					WillReturnError(&pq.Error{Code: codeForeignKeyViolation, Constraint: "attendances_user_id_fkey"})
				mock.ExpectRollback()
			},
			wantErr: storage.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMock(t)
			tc.mockSetup(mock)

			attendance, err := s.RegisterForEvent(context.Background(), eventID, userID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, attendance)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "a1", attendance.ID)
			assert.Equal(t, models.AttendanceRegistered, attendance.Status)
		})
	}
}

func TestUnregisterFromEventNotRegistered(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectExec(q("DELETE FROM attendances WHERE user_id = $1 AND event_id = $2")).
		WithArgs(userID, eventID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UnregisterFromEvent(context.Background(), eventID, userID)
	assert.ErrorIs(t, err, storage.ErrAttendanceNotFound)
}

func TestRemoveAttendeeNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id FROM attendances WHERE event_id = $1 AND user_id = $2 FOR UPDATE")).
		WithArgs(eventID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := s.RemoveAttendee(context.Background(), eventID, userID)
	assert.ErrorIs(t, err, storage.ErrAttendanceNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery(q("INSERT INTO users")).
		WithArgs("Ann", "ann@uni.edu", nil, "USER").
		WillReturnError(&pq.Error{Code: codeUniqueViolation, Constraint: "users_email_key"})

	_, err := s.CreateUser(context.Background(), models.UserInput{Name: "Ann", Email: "ann@uni.edu", Role: models.RoleUser})
	assert.ErrorIs(t, err, storage.ErrUserExists)
}

func TestCreateEventUnknownClub(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery(q("INSERT INTO events")).
		WillReturnError(&pq.Error{Code: codeForeignKeyViolation, Constraint: "events_club_id_fkey"})

	start := time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)
	_, err := s.CreateEvent(context.Background(), models.EventInput{
		Title:       "Kickoff",
		Description: "First meeting",
		Location:    "Hall A",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		ClubID:      clubID,
		CreatedByID: userID,
	})
	assert.ErrorIs(t, err, storage.ErrClubNotFound)
}

func TestGetClub(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "name", "description", "category", "logo", "created_at", "updated_at", "members", "events"}

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectQuery(q("FROM clubs c WHERE c.id = $1")).
			WithArgs(clubID).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(clubID, "Chess", "Weekly games", "ACADEMIC", nil, created, created, 3, 1))

		club, err := s.GetClub(context.Background(), clubID)
		require.NoError(t, err)
		assert.Equal(t, "Chess", club.Name)
		assert.Equal(t, models.CategoryAcademic, club.Category)
		assert.Nil(t, club.Logo)
		assert.Equal(t, 3, club.MemberCount)
		assert.Equal(t, 1, club.EventCount)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)

		mock.ExpectQuery(q("FROM clubs c WHERE c.id = $1")).
			WithArgs(clubID).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := s.GetClub(context.Background(), clubID)
		assert.ErrorIs(t, err, storage.ErrClubNotFound)
	})
}

func TestDeleteClubNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectExec(q("DELETE FROM clubs WHERE id = $1")).
		WithArgs(clubID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.DeleteClub(context.Background(), clubID), storage.ErrClubNotFound)
}

func TestUserAttendedEventIDs(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectQuery(q("SELECT event_id FROM attendances WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1").AddRow("e2"))

	ids, err := s.UserAttendedEventIDs(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, ids)
}

func TestMigrate(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	for range migrations {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, s.Migrate(context.Background()))
}
