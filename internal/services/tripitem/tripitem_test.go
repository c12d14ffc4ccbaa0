package tripitem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
	"github.com/magabrotheeeer/tripx-backend/internal/storage/repository"
)

type TripsMock struct{ mock.Mock }

func (m *TripsMock) ReadTrip(ctx context.Context, id string) (*models.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

type ItemsMock struct{ mock.Mock }

func (m *ItemsMock) CreateItem(ctx context.Context, item *models.Expense) (*models.Expense, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *ItemsMock) ReadItem(ctx context.Context, id string) (*models.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *ItemsMock) UpdateItem(ctx context.Context, item *models.Expense) (*models.Expense, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *ItemsMock) DeleteItem(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *ItemsMock) ListItemsByTrip(ctx context.Context, tripID string) ([]*models.Expense, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Expense), args.Error(1)
}

func NewNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func ownedTrip(id, userUID string) *models.Trip {
	return &models.Trip{ID: id, UserUID: userUID, TripName: "Goa"}
}

func TestService_List(t *testing.T) {
	expenses := []*models.Expense{
		{ItemMeta: models.ItemMeta{ID: "e1", TripID: "t1", UserUID: "u1"}, Amount: 100},
		{ItemMeta: models.ItemMeta{ID: "e2", TripID: "t1", UserUID: "u1"}, Amount: 250},
	}

	tests := []struct {
		name       string
		setupMocks func(trips *TripsMock, items *ItemsMock)
		tripID     string
		userUID    string
		wantCount  int
		wantErr    error
	}{
		{
			name: "success list for owner",
			setupMocks: func(trips *TripsMock, items *ItemsMock) {
				trips.On("ReadTrip", mock.Anything, "t1").Return(ownedTrip("t1", "u1"), nil).Once()
				items.On("ListItemsByTrip", mock.Anything, "t1").Return(expenses, nil).Once()
			},
			tripID:    "t1",
			userUID:   "u1",
			wantCount: 2,
		},
		{
			name: "foreign trip is reported as missing",
			setupMocks: func(trips *TripsMock, _ *ItemsMock) {
				trips.On("ReadTrip", mock.Anything, "t1").Return(ownedTrip("t1", "u1"), nil).Once()
			},
			tripID:  "t1",
			userUID: "u2",
			wantErr: ErrNotFound,
		},
		{
			name: "absent trip is reported as missing",
			setupMocks: func(trips *TripsMock, _ *ItemsMock) {
				trips.On("ReadTrip", mock.Anything, "missing").
					Return(nil, fmt.Errorf("storage.ReadTrip: %w", repository.ErrNotFound)).Once()
			},
			tripID:  "missing",
			userUID: "u1",
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trips := new(TripsMock)
			items := new(ItemsMock)
			svc := NewService[*models.Expense](trips, items, NewNoopLogger())

			tt.setupMocks(trips, items)

			got, err := svc.List(context.Background(), tt.tripID, tt.userUID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantCount)
			}

			trips.AssertExpectations(t)
			items.AssertExpectations(t)
		})
	}
}

func TestService_Create_StampsOwner(t *testing.T) {
	trips := new(TripsMock)
	items := new(ItemsMock)
	svc := NewService[*models.Expense](trips, items, NewNoopLogger())

	trips.On("ReadTrip", mock.Anything, "t1").Return(ownedTrip("t1", "u1"), nil).Once()
	items.On("CreateItem", mock.Anything, mock.MatchedBy(func(e *models.Expense) bool {
		return e.TripID == "t1" && e.UserUID == "u1"
	})).Return(&models.Expense{
		ItemMeta: models.ItemMeta{ID: "e1", TripID: "t1", UserUID: "u1"},
		Amount:   500,
	}, nil).Once()

	// Полезная нагрузка пытается подделать владельца и поездку.
	forged := &models.Expense{
		ItemMeta: models.ItemMeta{TripID: "someone-elses-trip", UserUID: "attacker"},
		Amount:   500,
	}

	created, err := svc.Create(context.Background(), "t1", "u1", forged)
	require.NoError(t, err)
	assert.Equal(t, "t1", created.TripID)
	assert.Equal(t, "u1", created.UserUID)

	trips.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestService_Create_ForeignTrip(t *testing.T) {
	trips := new(TripsMock)
	items := new(ItemsMock)
	svc := NewService[*models.Expense](trips, items, NewNoopLogger())

	trips.On("ReadTrip", mock.Anything, "t1").Return(ownedTrip("t1", "u1"), nil).Once()

	_, err := svc.Create(context.Background(), "t1", "u2", &models.Expense{Amount: 10})
	assert.ErrorIs(t, err, ErrNotFound)
	items.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestService_Update(t *testing.T) {
	stored := func() *models.Expense {
		return &models.Expense{
			ItemMeta: models.ItemMeta{ID: "e1", TripID: "t1", UserUID: "u1"},
			Amount:   100,
			Category: "Food",
		}
	}

	t.Run("success update applies patch", func(t *testing.T) {
		trips := new(TripsMock)
		items := new(ItemsMock)
		svc := NewService[*models.Expense](trips, items, NewNoopLogger())

		items.On("ReadItem", mock.Anything, "e1").Return(stored(), nil).Once()
		items.On("UpdateItem", mock.Anything, mock.MatchedBy(func(e *models.Expense) bool {
			return e.Amount == 250 && e.Category == "Food" && e.UserUID == "u1"
		})).Return(&models.Expense{
			ItemMeta: models.ItemMeta{ID: "e1", TripID: "t1", UserUID: "u1"},
			Amount:   250,
			Category: "Food",
		}, nil).Once()

		updated, err := svc.Update(context.Background(), "e1", "u1", func(e *models.Expense) {
			e.Amount = 250
		})
		require.NoError(t, err)
		assert.Equal(t, 250.0, updated.Amount)

		// Проверка владельца идёт по самой записи, поездка не читается.
		trips.AssertNotCalled(t, "ReadTrip", mock.Anything, mock.Anything)
		items.AssertExpectations(t)
	})

	t.Run("foreign record is reported as missing", func(t *testing.T) {
		trips := new(TripsMock)
		items := new(ItemsMock)
		svc := NewService[*models.Expense](trips, items, NewNoopLogger())

		items.On("ReadItem", mock.Anything, "e1").Return(stored(), nil).Once()

		_, err := svc.Update(context.Background(), "e1", "u2", func(e *models.Expense) {
			e.Amount = 999
		})
		assert.ErrorIs(t, err, ErrNotFound)
		items.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})

	t.Run("absent record is reported as missing", func(t *testing.T) {
		trips := new(TripsMock)
		items := new(ItemsMock)
		svc := NewService[*models.Expense](trips, items, NewNoopLogger())

		items.On("ReadItem", mock.Anything, "missing").
			Return(nil, fmt.Errorf("storage.ReadItem: %w", repository.ErrNotFound)).Once()

		_, err := svc.Update(context.Background(), "missing", "u1", func(*models.Expense) {})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	stored := &models.Expense{
		ItemMeta: models.ItemMeta{ID: "e1", TripID: "t1", UserUID: "u1"},
		Amount:   100,
	}

	t.Run("success delete", func(t *testing.T) {
		trips := new(TripsMock)
		items := new(ItemsMock)
		svc := NewService[*models.Expense](trips, items, NewNoopLogger())

		items.On("ReadItem", mock.Anything, "e1").Return(stored, nil).Once()
		items.On("DeleteItem", mock.Anything, "e1").Return(1, nil).Once()

		assert.NoError(t, svc.Delete(context.Background(), "e1", "u1"))
		items.AssertExpectations(t)
	})

	t.Run("second delete is reported as missing", func(t *testing.T) {
		trips := new(TripsMock)
		items := new(ItemsMock)
		svc := NewService[*models.Expense](trips, items, NewNoopLogger())

		items.On("ReadItem", mock.Anything, "e1").
			Return(nil, fmt.Errorf("storage.ReadItem: %w", repository.ErrNotFound)).Once()

		assert.ErrorIs(t, svc.Delete(context.Background(), "e1", "u1"), ErrNotFound)
	})

	t.Run("foreign record is not deleted", func(t *testing.T) {
		trips := new(TripsMock)
		items := new(ItemsMock)
		svc := NewService[*models.Expense](trips, items, NewNoopLogger())

		items.On("ReadItem", mock.Anything, "e1").Return(stored, nil).Once()

		assert.ErrorIs(t, svc.Delete(context.Background(), "e1", "u2"), ErrNotFound)
		items.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})

	t.Run("row vanished between read and delete", func(t *testing.T) {
		trips := new(TripsMock)
		items := new(ItemsMock)
		svc := NewService[*models.Expense](trips, items, NewNoopLogger())

		items.On("ReadItem", mock.Anything, "e1").Return(stored, nil).Once()
		items.On("DeleteItem", mock.Anything, "e1").Return(0, nil).Once()

		assert.ErrorIs(t, svc.Delete(context.Background(), "e1", "u1"), ErrNotFound)
	})
}
