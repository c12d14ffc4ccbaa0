package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/tripx-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
	"github.com/magabrotheeeer/tripx-backend/internal/services/tripitem"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, tripID, userUID string, item *models.Expense) (*models.Expense, error) {
	args := m.Called(ctx, tripID, userUID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		tripID         string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное создание расхода",
			body:    `{"description":"Lunch","amount":450}`,
			tripID:  "t1",
			userUID: "u1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "t1", "u1", mock.Anything).Return(&models.Expense{
					ItemMeta:    models.ItemMeta{ID: "e1", TripID: "t1", UserUID: "u1"},
					Description: "Lunch",
					Amount:      450,
					Category:    "Miscellaneous",
					Currency:    "INR",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"success"`,
		},
		{
			name:    "чужая поездка выглядит как отсутствующая",
			body:    `{"description":"Lunch","amount":450}`,
			tripID:  "t1",
			userUID: "u2",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "t1", "u2", mock.Anything).
					Return(nil, tripitem.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `Trip not found.`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"description":`,
			tripID:         "t1",
			userUID:        "u1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "нулевая сумма не проходит валидацию",
			body:           `{"description":"Lunch","amount":0}`,
			tripID:         "t1",
			userUID:        "u1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"status":"fail"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, "expense", models.DummyExpense.ToModel)

			req := httptest.NewRequest(http.MethodPost, "/expenses/trip/"+tt.tripID,
				strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("tripId", tt.tripID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
