package debt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"budgeteer/internal/debt"
	"budgeteer/internal/money"
)

func TestService_Pay(t *testing.T) {
	debtID := uuid.New()

	type testCase struct {
		name      string
		amount    string
		isExtra   bool
		setupMock func(m *debt.MockRepository, tx *debt.MockPaymentTx)
		wantTotal string
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "DecrementsBalance",
			amount: "600.00",
			setupMock: func(m *debt.MockRepository, tx *debt.MockPaymentTx) {
				m.EXPECT().BeginPayment(gomock.Any(), debtID).Return(tx, nil)
				tx.EXPECT().Debt().Return(&debt.Debt{ID: debtID, TotalAmount: money.MustParse("2500.00")})
				tx.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *debt.Payment) error {
						assert.Equal(t, debtID, p.DebtID)
						assert.Equal(t, "600.00", p.Amount.String())
						assert.False(t, p.IsExtra)
						p.ID = uuid.New()
						return nil
					})
				tx.EXPECT().
					UpdateBalance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, newTotal money.Amount) (*debt.Debt, error) {
						assert.Equal(t, "1900.00", newTotal.String())
						return &debt.Debt{ID: debtID, TotalAmount: newTotal}, nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(errors.New("tx already committed"))
			},
			wantTotal: "1900.00",
		},
		{
			name:    "OverpaymentClampsAtZero",
			amount:  "2000.00",
			isExtra: true,
			setupMock: func(m *debt.MockRepository, tx *debt.MockPaymentTx) {
				m.EXPECT().BeginPayment(gomock.Any(), debtID).Return(tx, nil)
				tx.EXPECT().Debt().Return(&debt.Debt{ID: debtID, TotalAmount: money.MustParse("1900.00")})
				tx.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *debt.Payment) error {
						assert.True(t, p.IsExtra)
						return nil
					})
				tx.EXPECT().
					UpdateBalance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, newTotal money.Amount) (*debt.Debt, error) {
						assert.Equal(t, "0.00", newTotal.String())
						return &debt.Debt{ID: debtID, TotalAmount: newTotal}, nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(errors.New("tx already committed"))
			},
			wantTotal: "0.00",
		},
		{
			name:   "DebtNotFound",
			amount: "100.00",
			setupMock: func(m *debt.MockRepository, tx *debt.MockPaymentTx) {
				m.EXPECT().BeginPayment(gomock.Any(), debtID).Return(nil, debt.ErrNotFound)
			},
			wantErr: debt.ErrNotFound,
		},
		{
			name:   "PaymentInsertFailsRollsBack",
			amount: "100.00",
			setupMock: func(m *debt.MockRepository, tx *debt.MockPaymentTx) {
				m.EXPECT().BeginPayment(gomock.Any(), debtID).Return(tx, nil)
				tx.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: errors.New("recording payment: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := debt.NewMockRepository(ctrl)
			tx := debt.NewMockPaymentTx(ctrl)
			tt.setupMock(repo, tx)

			svc := debt.NewService(repo)
			got, err := svc.Pay(context.Background(), debtID, debt.PayParams{
				Amount:  money.MustParse(tt.amount),
				IsExtra: tt.isExtra,
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.TotalAmount.String())
		})
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := debt.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateDebt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *debt.Debt) error {
			d.ID = uuid.New()
			return nil
		})

	svc := debt.NewService(repo)
	got, err := svc.Create(context.Background(), debt.CreateParams{
		Name:         "Credit Card",
		TotalAmount:  money.MustParse("2500.00"),
		MinPayment:   money.MustParse("100.00"),
		InterestRate: money.MustParse("19.99"),
		Active:       true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "2500.00", got.TotalAmount.String())
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := debt.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteDebt(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := debt.NewService(repo)
	assert.NoError(t, svc.Delete(context.Background(), uuid.New()))
}
