package postgres

import (
	"context"
	"testing"
	"time"

	"token-mint-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintTxTestColumns() []string {
	return []string{
		"id", "mint_request_id", "policy_id", "amount",
		"mint_status", "transfer_status", "serials", "error", "created_at",
	}
}

func mintTxTestRow(t *domain.MintTransaction) *pgxmock.Rows {
	return pgxmock.NewRows(mintTxTestColumns()).AddRow(
		t.ID, t.MintRequestID, t.PolicyID, t.Amount,
		t.MintStatus, t.TransferStatus, t.Serials, t.Error, t.CreatedAt,
	)
}

func testMintTx(requestID uuid.UUID, amount int64) *domain.MintTransaction {
	row := domain.NewMintTransaction(requestID, "policy-1", amount, true)
	row.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	return row
}

func TestMintTransactionRepo_CreateBatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMintTransactionRepo(mock)
	requestID := uuid.New()
	rows := []*domain.MintTransaction{
		testMintTx(requestID, 10),
		testMintTx(requestID, 10),
		testMintTx(requestID, 5),
	}

	mock.ExpectBegin()
	for _, row := range rows {
		mock.ExpectExec("INSERT INTO mint_transactions").
			WithArgs(
				row.ID, row.MintRequestID, row.PolicyID, row.Amount,
				row.MintStatus, row.TransferStatus, row.Serials, row.Error, row.CreatedAt,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateBatch(context.Background(), tx, rows)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMintTransactionRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMintTransactionRepo(mock)
	row := testMintTx(uuid.New(), 10)
	row.MintStatus = domain.MintTxStatusSuccess
	row.Serials = []int64{101, 102, 103, 104, 105, 106, 107, 108, 109, 110}

	mock.ExpectExec("UPDATE mint_transactions SET").
		WithArgs(row.MintStatus, row.TransferStatus, row.Serials, row.Error, row.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Update(context.Background(), row)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMintTransactionRepo_ListMintable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMintTransactionRepo(mock)
	requestID := uuid.New()
	a := testMintTx(requestID, 10)
	b := testMintTx(requestID, 5)
	b.MintStatus = domain.MintTxStatusError

	// A nil exclusion reaches postgres as an empty array, not NULL.
	mock.ExpectQuery("SELECT .+ FROM mint_transactions").
		WithArgs(requestID, []uuid.UUID{}, 10).
		WillReturnRows(mintTxTestRow(a).AddRow(
			b.ID, b.MintRequestID, b.PolicyID, b.Amount,
			b.MintStatus, b.TransferStatus, b.Serials, b.Error, b.CreatedAt,
		))

	result, err := repo.ListMintable(context.Background(), requestID, 10, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.MintTxStatusNew, result[0].MintStatus)
	assert.Equal(t, domain.MintTxStatusError, result[1].MintStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMintTransactionRepo_ListMintable_SkipsExcluded(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMintTransactionRepo(mock)
	requestID := uuid.New()
	attempted := uuid.New()
	b := testMintTx(requestID, 5)

	mock.ExpectQuery(`SELECT .+ FROM mint_transactions.+id <> ALL`).
		WithArgs(requestID, []uuid.UUID{attempted}, 10).
		WillReturnRows(mintTxTestRow(b))

	result, err := repo.ListMintable(context.Background(), requestID, 10, []uuid.UUID{attempted})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, b.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMintTransactionRepo_CountByRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMintTransactionRepo(mock)
	requestID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(requestID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountByRequest(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestMintTransactionRepo_MintedSerialCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMintTransactionRepo(mock)
	requestID := uuid.New()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(cardinality").
		WithArgs(requestID).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(20)))

	count, err := repo.MintedSerialCount(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), count)
}

func TestMintTransactionRepo_HasPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMintTransactionRepo(mock)
	requestID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(requestID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	pending, err := repo.HasPending(context.Background(), requestID)
	require.NoError(t, err)
	assert.True(t, pending)
}
