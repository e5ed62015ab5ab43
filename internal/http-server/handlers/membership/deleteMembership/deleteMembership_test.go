package deleteMembership

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubhub/internal/http-server/handlers/membership/deleteMembership/mocks"
	"clubhub/internal/lib/logger/handlers/slogdiscard"
	"clubhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	clubID = "3c9d0f44-1b7e-4c55-8e2a-6f1a2b3c4d5e"
	userID = "7d1f3c52-5a8e-4f0b-a7f4-3b2c1d0e9f88"
)

func TestDeleteMembershipHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	body := `{"user_id":"` + userID + `","club_id":"` + clubID + `"}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.MembershipDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: body,
			mockSetup: func(m *mocks.MembershipDeleter) {
				m.On("LeaveClub", mock.Anything, clubID, userID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Empty body",
			requestBody:    ``,
			mockSetup:      func(m *mocks.MembershipDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing user_id",
			requestBody:    `{"club_id":"` + clubID + `"}`,
			mockSetup:      func(m *mocks.MembershipDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field UserID is a required field"}`,
		},
		{
			name:        "Not a member",
			requestBody: body,
			mockSetup: func(m *mocks.MembershipDeleter) {
				m.On("LeaveClub", mock.Anything, clubID, userID).
					Return(fmt.Errorf("storage.postgres.LeaveClub: %w", storage.ErrMembershipNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"membership not found"}`,
		},
		{
			name:        "Store failure",
			requestBody: body,
			mockSetup: func(m *mocks.MembershipDeleter) {
				m.On("LeaveClub", mock.Anything, clubID, userID).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete membership"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			memberships := mocks.NewMembershipDeleter(t)
			tc.mockSetup(memberships)

			handler := New(logger, memberships)

			req, err := http.NewRequest(http.MethodDelete, "/memberships", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
