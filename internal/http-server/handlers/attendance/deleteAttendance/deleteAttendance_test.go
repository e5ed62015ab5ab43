package deleteAttendance

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubhub/internal/http-server/handlers/attendance/deleteAttendance/mocks"
	"clubhub/internal/lib/logger/handlers/slogdiscard"
	"clubhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	eventID = "9e4b6a21-0c3d-4f7e-8a9b-1c2d3e4f5a6b"
	userID  = "7d1f3c52-5a8e-4f0b-a7f4-3b2c1d0e9f88"
)

func TestDeleteAttendanceHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	body := `{"user_id":"` + userID + `","event_id":"` + eventID + `"}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.AttendanceDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: body,
			mockSetup: func(m *mocks.AttendanceDeleter) {
				m.On("UnregisterFromEvent", mock.Anything, eventID, userID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Malformed event_id",
			requestBody:    `{"user_id":"` + userID + `","event_id":"e-1"}`,
			mockSetup:      func(m *mocks.AttendanceDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field EventID is not a valid id"}`,
		},
		{
			name:        "Not registered",
			requestBody: body,
			mockSetup: func(m *mocks.AttendanceDeleter) {
				m.On("UnregisterFromEvent", mock.Anything, eventID, userID).Return(storage.ErrAttendanceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"attendance not found"}`,
		},
		{
			name:        "Store failure",
			requestBody: body,
			mockSetup: func(m *mocks.AttendanceDeleter) {
				m.On("UnregisterFromEvent", mock.Anything, eventID, userID).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete attendance"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			attendances := mocks.NewAttendanceDeleter(t)
			tc.mockSetup(attendances)

			handler := New(logger, attendances)

			req, err := http.NewRequest(http.MethodDelete, "/attendances", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
