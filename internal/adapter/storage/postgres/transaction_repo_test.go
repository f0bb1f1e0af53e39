package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionColumnNames() []string {
	return []string{
		"id", "transaction_type", "amount", "partner_id", "order_id", "payment_method",
		"status", "description", "metadata", "created_at",
	}
}

func newTestTransaction(partnerID uuid.UUID) *domain.Transaction {
	orderID := uuid.New()
	return &domain.Transaction{
		ID:              uuid.New(),
		TransactionType: domain.TransactionTypeCommissionCharge,
		Amount:          decimal.NewFromInt(150),
		PartnerID:       partnerID,
		OrderID:         &orderID,
		PaymentMethod:   domain.PaymentMethodSystem,
		Status:          domain.TransactionStatusCompleted,
		Description:     "Commission for mobile sell order",
		Metadata: domain.TransactionMetadata{
			PreviousBalance: decimal.NewFromInt(1000),
			NewBalance:      decimal.NewFromInt(1150),
			OrderModel:      domain.OrderModelSellOrder,
			OrderType:       domain.OrderTypeSell,
			Category:        string(domain.CategoryMobile),
			Rate:            decimal.NewFromInt(3),
			RequestedAmount: decimal.NewFromInt(150),
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionRow(t *testing.T, txn *domain.Transaction) []any {
	metadata, err := json.Marshal(txn.Metadata)
	require.NoError(t, err)
	return []any{
		txn.ID, txn.TransactionType, txn.Amount, txn.PartnerID, txn.OrderID, txn.PaymentMethod,
		txn.Status, txn.Description, metadata, txn.CreatedAt,
	}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.TransactionType, txn.Amount, txn.PartnerID, txn.OrderID,
			txn.PaymentMethod, txn.Status, txn.Description, pgxmock.AnyArg(), txn.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(txn.ID).
		WillReturnRows(pgxmock.NewRows(transactionColumnNames()).AddRow(transactionRow(t, txn)...))

	result, err := repo.GetByID(context.Background(), txn.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.True(t, result.IsCharge())
	assert.Equal(t, "1150", result.Metadata.NewBalance.String())
	assert.Equal(t, domain.OrderModelSellOrder, result.Metadata.OrderModel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(transactionColumnNames()))

	result, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestTransactionRepo_ListByPartner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	partnerID := uuid.New()
	charge := newTestTransaction(partnerID)
	rollback := newTestTransaction(partnerID)
	rollback.TransactionType = domain.TransactionTypeCommissionRollback
	rollback.Amount = decimal.NewFromInt(-150)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(partnerID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery("SELECT .+ FROM transactions WHERE partner_id .+ ORDER BY created_at DESC").
		WithArgs(partnerID, 20, 0).
		WillReturnRows(pgxmock.NewRows(transactionColumnNames()).
			AddRow(transactionRow(t, rollback)...).
			AddRow(transactionRow(t, charge)...))

	txns, total, err := repo.ListByPartner(context.Background(), ports.TransactionListParams{
		PartnerID: partnerID,
		Page:      1,
		PageSize:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, txns, 2)
	assert.True(t, txns[0].IsRollback())
	assert.Equal(t, "-150", txns[0].Amount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByPartner_TypeFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	partnerID := uuid.New()
	txType := domain.TransactionTypeCommissionRollback

	mock.ExpectQuery("SELECT COUNT.+transaction_type").
		WithArgs(partnerID, txType).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT .+ FROM transactions WHERE partner_id .+ transaction_type").
		WithArgs(partnerID, txType, 10, 10).
		WillReturnRows(pgxmock.NewRows(transactionColumnNames()))

	txns, total, err := repo.ListByPartner(context.Background(), ports.TransactionListParams{
		PartnerID: partnerID,
		Type:      &txType,
		Page:      2,
		PageSize:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, txns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_NetByPartner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	partnerID := uuid.New()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM transactions").
		WithArgs(partnerID, domain.TransactionStatusCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(-150)))

	net, err := repo.NetByPartner(context.Background(), partnerID)
	require.NoError(t, err)
	assert.Equal(t, "-150", net.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
