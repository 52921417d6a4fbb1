package expense_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"budgeteer/internal/expense"
	"budgeteer/internal/money"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name         string
		params       expense.CreateParams
		setupMock    func(m *expense.MockRepository)
		wantCategory string
		wantErr      bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: expense.CreateParams{
				Name:     "Groceries",
				Amount:   money.MustParse("85.50"),
				Category: "Food",
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, exp *expense.Expense) error {
						exp.ID = uuid.New()
						return nil
					})
			},
			wantCategory: "Food",
		},
		{
			name: "DefaultsCategory",
			params: expense.CreateParams{
				Name:   "Gas",
				Amount: money.MustParse("45.00"),
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, exp *expense.Expense) error {
						exp.ID = uuid.New()
						return nil
					})
			},
			wantCategory: expense.DefaultCategory,
		},
		{
			name:   "RepoError",
			params: expense.CreateParams{Name: "Gas", Amount: money.MustParse("45.00")},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.wantCategory, got.Category)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Deletes are idempotent: the store reports success for unknown ids too.
	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteExpense(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := expense.NewService(repo)
	assert.NoError(t, svc.Delete(context.Background(), uuid.New()))
}

func TestService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		ClearExpenses(gomock.Any()).
		Return(nil)

	svc := expense.NewService(repo)
	assert.NoError(t, svc.Clear(context.Background()))
}
