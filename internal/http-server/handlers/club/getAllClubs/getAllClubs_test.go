package getAllClubs

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubhub/internal/http-server/handlers/club/getAllClubs/mocks"
	"clubhub/internal/lib/logger/handlers/slogdiscard"
	"clubhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllClubsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	logo := "https://cdn.uni.edu/chess.png"
	created := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.ClubsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.ClubsGetter) {
				m.On("ListClubs", mock.Anything).Return([]models.Club{
					{ID: "c2", Name: "Drama", Category: models.CategoryArts, CreatedAt: created.Add(time.Hour), UpdatedAt: created.Add(time.Hour)},
					{ID: "c1", Name: "Chess", Category: models.CategoryOther, Logo: &logo, CreatedAt: created, UpdatedAt: created, MemberCount: 2, EventCount: 1},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ClubsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Clubs, 2)
				assert.Equal(t, "Drama", resp.Clubs[0].Name)
				assert.Nil(t, resp.Clubs[0].Logo)
				require.NotNil(t, resp.Clubs[1].Logo)
				assert.Equal(t, logo, *resp.Clubs[1].Logo)
				assert.Equal(t, 2, resp.Clubs[1].MemberCount)
				assert.Equal(t, 1, resp.Clubs[1].EventCount)
			},
		},
		{
			name: "Empty",
			mockSetup: func(m *mocks.ClubsGetter) {
				m.On("ListClubs", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","clubs":[]}`,
		},
		{
			name: "Store failure",
			mockSetup: func(m *mocks.ClubsGetter) {
				m.On("ListClubs", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get clubs"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			clubs := mocks.NewClubsGetter(t)
			tc.mockSetup(clubs)

			req, err := http.NewRequest(http.MethodGet, "/clubs", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, clubs).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
