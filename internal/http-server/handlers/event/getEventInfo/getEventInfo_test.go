package getEventInfo

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubhub/internal/http-server/handlers/event/getEventInfo/mocks"
	"clubhub/internal/lib/logger/handlers/slogdiscard"
	"clubhub/internal/models"
	"clubhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	eventID = "9e4b6a21-0c3d-4f7e-8a9b-1c2d3e4f5a6b"
	clubID  = "3c9d0f44-1b7e-4c55-8e2a-6f1a2b3c4d5e"
	adminID = "0b8f9a3c-3f3e-4e43-9b1a-8c6e2f1d7a10"
)

func TestGetEventInfoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	start := time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC)
	capacity := 2

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: eventID,
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, eventID).Return(&models.Event{
					ID:            eventID,
					Title:         "Blitz night",
					Description:   "Five minute games",
					Location:      "Room 101",
					StartTime:     start,
					EndTime:       start.Add(3 * time.Hour),
					MaxAttendees:  &capacity,
					Status:        models.EventUpcoming,
					ClubID:        clubID,
					ClubName:      "Chess",
					CreatedByID:   adminID,
					AttendeeCount: 1,
					CreatedAt:     start.Add(-48 * time.Hour),
					UpdatedAt:     start.Add(-48 * time.Hour),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","event":{"id":"` + eventID + `","title":"Blitz night",
				"description":"Five minute games","location":"Room 101",
				"start_time":"2025-05-20T18:00:00Z","end_time":"2025-05-20T21:00:00Z","max_attendees":2,
				"status":"upcoming","club_id":"` + clubID + `","club_name":"Chess","created_by_id":"` + adminID + `",
				"attendee_count":1,"created_at":"2025-05-18T18:00:00Z","updated_at":"2025-05-18T18:00:00Z"}}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "invalid",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id"}`,
		},
		{
			name:    "Event not found",
			eventID: eventID,
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, eventID).
					Return(nil, fmt.Errorf("storage.postgres.GetEvent: %w", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Internal server error",
			eventID: eventID,
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, eventID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event information"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/events/{id}", New(logger, mockGetter))

			req, err := http.NewRequest(http.MethodGet, "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
