package trip

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *RepoMock) ListTripsByUser(ctx context.Context, userUID string) ([]*models.Trip, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Trip), args.Error(1)
}

func NewNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create(t *testing.T) {
	dummyReq := models.DummyTrip{
		TripName:    "Goa vacation",
		Destination: "Goa",
		StartDate:   "2025-12-20",
		EndDate:     "2025-12-27",
	}

	tests := []struct {
		name       string
		req        models.DummyTrip
		setupMocks func(repo *RepoMock)
		wantErr    bool
	}{
		{
			name: "success create stamps owner",
			req:  dummyReq,
			setupMocks: func(repo *RepoMock) {
				repo.On("CreateTrip", mock.Anything, mock.MatchedBy(func(tr *models.Trip) bool {
					return tr.UserUID == "u1" &&
						tr.StartDate.Equal(time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)) &&
						tr.Activities != nil
				})).Return(&models.Trip{ID: "t1", UserUID: "u1"}, nil).Once()
			},
		},
		{
			name: "invalid start date",
			req: models.DummyTrip{
				TripName:    dummyReq.TripName,
				Destination: dummyReq.Destination,
				StartDate:   "not a date",
				EndDate:     dummyReq.EndDate,
			},
			setupMocks: func(_ *RepoMock) {},
			wantErr:    true,
		},
		{
			name: "end before start is allowed",
			req: models.DummyTrip{
				TripName:    dummyReq.TripName,
				Destination: dummyReq.Destination,
				StartDate:   "2025-12-27",
				EndDate:     "2025-12-20",
			},
			setupMocks: func(repo *RepoMock) {
				repo.On("CreateTrip", mock.Anything, mock.Anything).
					Return(&models.Trip{ID: "t2", UserUID: "u1"}, nil).Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := NewService(repo, NewNoopLogger())

			tt.setupMocks(repo)

			_, err := svc.Create(context.Background(), "u1", tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestService_List(t *testing.T) {
	repo := new(RepoMock)
	svc := NewService(repo, NewNoopLogger())

	want := []*models.Trip{{ID: "t1", UserUID: "u1"}}
	repo.On("ListTripsByUser", mock.Anything, "u1").Return(want, nil).Once()

	got, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
