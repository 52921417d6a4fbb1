package recurring_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	recurringHandler "budgeteer/internal/http/recurring"
	"budgeteer/internal/recurring"
)

func newRouter(repo recurring.Repository) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/recurring", recurringHandler.NewHandler(recurring.NewService(repo)).Routes)

	return r
}

func TestHandler_Create(t *testing.T) {
	type testCase struct {
		name       string
		body       string
		setupMock  func(m *recurring.MockRepository)
		wantStatus int
		wantField  string
	}

	tests := []testCase{
		{
			name: "Success",
			body: `{"name": "Rent", "amount": "1200.00"}`,
			setupMock: func(m *recurring.MockRepository) {
				m.EXPECT().
					CreateRecurring(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, exp *recurring.Expense) error {
						assert.True(t, exp.Active) // defaults to active
						exp.ID = uuid.New()
						return nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "MissingName",
			body:       `{"amount": "1200.00"}`,
			setupMock:  func(m *recurring.MockRepository) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "name",
		},
		{
			name:       "MissingAmount",
			body:       `{"name": "Rent"}`,
			setupMock:  func(m *recurring.MockRepository) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "amount",
		},
		{
			name:       "NegativeAmount",
			body:       `{"name": "Rent", "amount": "-5"}`,
			setupMock:  func(m *recurring.MockRepository) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := recurring.NewMockRepository(ctrl)
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodPost, "/api/recurring", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantField != "" {
				var resp struct {
					Field string `json:"field"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantField, resp.Field)
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Unknown ids still delete cleanly.
	repo := recurring.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteRecurring(gomock.Any(), gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/recurring/"+uuid.NewString(), nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
