package updateClub

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubhub/internal/http-server/handlers/club/updateClub/mocks"
	"clubhub/internal/lib/logger/handlers/slogdiscard"
	"clubhub/internal/models"
	"clubhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const clubID = "3c9d0f44-1b7e-4c55-8e2a-6f1a2b3c4d5e"

func TestUpdateClubHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	input := models.ClubInput{Name: "Chess+", Description: "Daily games", Category: models.CategoryAcademic}

	testCases := []struct {
		name           string
		clubID         string
		requestBody    string
		mockSetup      func(m *mocks.ClubUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			clubID:      clubID,
			requestBody: `{"name":"Chess+","description":"Daily games","category":"ACADEMIC"}`,
			mockSetup: func(m *mocks.ClubUpdater) {
				m.On("UpdateClub", mock.Anything, clubID, input).
					Return(&models.Club{ID: clubID, Name: "Chess+", Category: models.CategoryAcademic, MemberCount: 7}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"name":"Chess+"`)
				assert.Contains(t, body, `"member_count":7`)
			},
		},
		{
			name:           "Malformed id",
			clubID:         "1",
			requestBody:    `{"name":"Chess+","description":"Daily games","category":"ACADEMIC"}`,
			mockSetup:      func(m *mocks.ClubUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid club id"}`,
		},
		{
			name:           "Invalid JSON",
			clubID:         clubID,
			requestBody:    `{`,
			mockSetup:      func(m *mocks.ClubUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing category",
			clubID:         clubID,
			requestBody:    `{"name":"Chess+","description":"Daily games"}`,
			mockSetup:      func(m *mocks.ClubUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Category is a required field"}`,
		},
		{
			name:        "Not found",
			clubID:      clubID,
			requestBody: `{"name":"Chess+","description":"Daily games","category":"ACADEMIC"}`,
			mockSetup: func(m *mocks.ClubUpdater) {
				m.On("UpdateClub", mock.Anything, clubID, input).Return(nil, storage.ErrClubNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"club not found"}`,
		},
		{
			name:        "Store failure",
			clubID:      clubID,
			requestBody: `{"name":"Chess+","description":"Daily games","category":"ACADEMIC"}`,
			mockSetup: func(m *mocks.ClubUpdater) {
				m.On("UpdateClub", mock.Anything, clubID, input).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update club"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			clubs := mocks.NewClubUpdater(t)
			tc.mockSetup(clubs)

			router := chi.NewRouter()
			router.Put("/clubs/{id}", New(logger, clubs))

			req, err := http.NewRequest(http.MethodPut, "/clubs/"+tc.clubID, bytes.NewBufferString(tc.requestBody))
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
