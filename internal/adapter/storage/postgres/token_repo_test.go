package postgres

import (
	"context"
	"testing"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/pkg/apperror"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepo_GetToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	mock.ExpectQuery("SELECT token_id, token_name").
		WithArgs("0.0.5005").
		WillReturnRows(pgxmock.NewRows([]string{
			"token_id", "token_name", "token_type", "owner", "treasury", "wipe_enabled",
		}).AddRow(
			"0.0.5005", "Carbon Credit", domain.TokenTypeNonFungible, "did:owner", "0.0.9000", true,
		))

	token, err := repo.GetToken(context.Background(), "0.0.5005")
	require.NoError(t, err)
	assert.Equal(t, "Carbon Credit", token.TokenName)
	assert.Equal(t, domain.TokenTypeNonFungible, token.TokenType)
	assert.Equal(t, "0.0.9000", token.Treasury)
	assert.True(t, token.WipeEnabled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_GetToken_NotRegistered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	mock.ExpectQuery("SELECT token_id, token_name").
		WithArgs("0.0.404").
		WillReturnRows(pgxmock.NewRows([]string{
			"token_id", "token_name", "token_type", "owner", "treasury", "wipe_enabled",
		}))

	_, err = repo.GetToken(context.Background(), "0.0.404")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TKN_001", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	token := &domain.Token{
		TokenID:   "0.0.5005",
		TokenName: "Carbon Credit",
		TokenType: domain.TokenTypeNonFungible,
		Owner:     "did:owner",
		Treasury:  "0.0.9000",
	}

	mock.ExpectExec("INSERT INTO tokens").
		WithArgs(token.TokenID, token.TokenName, token.TokenType, token.Owner, token.Treasury, token.WipeEnabled).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), token))
	assert.NoError(t, mock.ExpectationsWereMet())
}
