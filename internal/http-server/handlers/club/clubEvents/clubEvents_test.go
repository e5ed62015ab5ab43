package clubEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubhub/internal/http-server/handlers/club/clubEvents/mocks"
	"clubhub/internal/lib/logger/handlers/slogdiscard"
	"clubhub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const clubID = "3c9d0f44-1b7e-4c55-8e2a-6f1a2b3c4d5e"

func TestClubEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	capacity := 30

	testCases := []struct {
		name           string
		clubID         string
		mockSetup      func(m *mocks.ClubEventsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			clubID: clubID,
			mockSetup: func(m *mocks.ClubEventsGetter) {
				m.On("UpcomingClubEvents", mock.Anything, clubID, mock.MatchedBy(func(now time.Time) bool {
					return time.Since(now) < time.Minute
				})).Return([]models.Event{
					{ID: "e1", Title: "Open day", ClubID: clubID, MaxAttendees: &capacity, AttendeeCount: 12},
					{ID: "e2", Title: "Tournament", ClubID: clubID},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.Len(t, resp.Events, 2)
				require.NotNil(t, resp.Events[0].MaxAttendees)
				assert.Equal(t, 30, *resp.Events[0].MaxAttendees)
				assert.Equal(t, 12, resp.Events[0].AttendeeCount)
				assert.Nil(t, resp.Events[1].MaxAttendees)
			},
		},
		{
			name:   "No events",
			clubID: clubID,
			mockSetup: func(m *mocks.ClubEventsGetter) {
				m.On("UpcomingClubEvents", mock.Anything, clubID, mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","events":[]}`,
		},
		{
			name:           "Malformed id",
			clubID:         "chess-club",
			mockSetup:      func(m *mocks.ClubEventsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid club id"}`,
		},
		{
			name:   "Store failure",
			clubID: clubID,
			mockSetup: func(m *mocks.ClubEventsGetter) {
				m.On("UpcomingClubEvents", mock.Anything, clubID, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get club events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events := mocks.NewClubEventsGetter(t)
			tc.mockSetup(events)

			router := chi.NewRouter()
			router.Get("/clubs/{id}/events", New(logger, events))

			req, err := http.NewRequest(http.MethodGet, "/clubs/"+tc.clubID+"/events", nil)
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
