package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubhub/internal/http-server/middleware/auth/mocks"
	"clubhub/internal/lib/logger/handlers/slogdiscard"
	"clubhub/internal/models"
	"clubhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminID = "0b8f9a3c-3f3e-4e43-9b1a-8c6e2f1d7a10"

func TestRequireRole(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		header         string
		mockSetup      func(m *mocks.UserProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Admin passes",
			header: "Bearer " + adminID,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("GetUser", mock.Anything, adminID).
					Return(&models.User{ID: adminID, Role: models.RoleAdmin}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   adminID,
		},
		{
			name:           "Missing header",
			header:         "",
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic " + adminID,
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:           "Malformed identity",
			header:         "Bearer not-a-uuid",
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:   "Unknown identity",
			header: "Bearer " + adminID,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("GetUser", mock.Anything, adminID).Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:   "Regular user",
			header: "Bearer " + adminID,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("GetUser", mock.Anything, adminID).
					Return(&models.User{ID: adminID, Role: models.RoleUser}, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:   "Store failure",
			header: "Bearer " + adminID,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("GetUser", mock.Anything, adminID).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"internal error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := mocks.NewUserProvider(t)
			tc.mockSetup(users)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, ok := UserFromContext(r.Context())
				require.True(t, ok)
				_, _ = w.Write([]byte(user.ID))
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			RequireRole(logger, users, models.RoleAdmin)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestUserFromContextEmpty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	user, ok := UserFromContext(req.Context())
	assert.False(t, ok)
	assert.Nil(t, user)
}
