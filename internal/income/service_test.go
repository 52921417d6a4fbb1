package income_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"budgeteer/internal/income"
	"budgeteer/internal/money"
)

func TestService_Current(t *testing.T) {
	type testCase struct {
		name       string
		setupMock  func(m *income.MockRepository)
		wantAmount string
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "ReturnsLatest",
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().
					LatestIncome(gomock.Any()).
					Return(&income.Income{ID: uuid.New(), Amount: money.MustParse("5000.00")}, nil)
			},
			wantAmount: "5000.00",
		},
		{
			name: "ZeroDefaultWhenEmpty",
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().
					LatestIncome(gomock.Any()).
					Return(nil, income.ErrNotFound)
			},
			wantAmount: "0.00",
		},
		{
			name: "RepoError",
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().
					LatestIncome(gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := income.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := income.NewService(repo)
			got, err := svc.Current(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount.String())
		})
	}
}

func TestService_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateIncome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *income.Income) error {
			inc.ID = uuid.New()
			return nil
		})

	svc := income.NewService(repo)
	got, err := svc.Set(context.Background(), money.MustParse("6200.00"))

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "6200.00", got.Amount.String())
}
