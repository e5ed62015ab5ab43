package updateEvent

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubhub/internal/http-server/handlers/event/updateEvent/mocks"
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
)

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	body := `{"title":"Rapid night","description":"Fifteen minute games","location":"Hall B",` +
		`"start_time":"2025-05-21T18:00:00Z","end_time":"2025-05-21T22:00:00Z","max_attendees":1,"club_id":"` + clubID + `"}`

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			eventID:     eventID,
			requestBody: body,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, eventID, mock.MatchedBy(func(in models.EventInput) bool {
					return in.Title == "Rapid night" && in.MaxAttendees != nil && *in.MaxAttendees == 1 && in.CreatedByID == ""
				})).Return(&models.Event{ID: eventID, Title: "Rapid night", AttendeeCount: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"title":"Rapid night"`)
				assert.Contains(t, body, `"attendee_count":3`)
			},
		},
		{
			name:           "Malformed id",
			eventID:        "12",
			requestBody:    body,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id"}`,
		},
		{
			name:           "Invalid JSON",
			eventID:        eventID,
			requestBody:    `[]`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing club",
			eventID:        eventID,
			requestBody:    `{"title":"t","description":"d","location":"l","start_time":"2025-05-21T18:00:00Z","end_time":"2025-05-21T22:00:00Z"}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field ClubID is a required field"}`,
		},
		{
			name:        "Event not found",
			eventID:     eventID,
			requestBody: body,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, eventID, mock.Anything).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Club not found",
			eventID:     eventID,
			requestBody: body,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, eventID, mock.Anything).Return(nil, storage.ErrClubNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"club not found"}`,
		},
		{
			name:        "Store failure",
			eventID:     eventID,
			requestBody: body,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, eventID, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events := mocks.NewEventUpdater(t)
			tc.mockSetup(events)

			router := chi.NewRouter()
			router.Put("/events/{id}", New(logger, events))

			req, err := http.NewRequest(http.MethodPut, "/events/"+tc.eventID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
