package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

func newRepoFixture(t *testing.T) (*RequestRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRequestRepo(sqlx.NewDb(db, "pgx")), mock
}

func TestCreateRequest(t *testing.T) {
	repo, mock := newRepoFixture(t)

	mock.ExpectQuery("INSERT INTO help_requests").
		WithArgs("Flat tire", "on highway", 41.0, 29.0,
			models.RequestStatusPending, models.PriorityHigh, 10, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	request := &models.HelpRequest{
		Title:       "Flat tire",
		Description: "on highway",
		Latitude:    41.0,
		Longitude:   29.0,
		Status:      models.RequestStatusPending,
		Priority:    models.PriorityHigh,
		CustomerID:  10,
		CreatedAt:   time.Now(),
	}
	err := repo.CreateRequest(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 7, request.ID)
	assert.Equal(t, int64(1), request.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequestUpdatesOneRow(t *testing.T) {
	repo, mock := newRepoFixture(t)

	mock.ExpectExec("UPDATE help_requests").
		WithArgs(models.RequestStatusAccepted, 3, 5, models.RequestStatusPending, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AcceptRequest(context.Background(), 5, 3, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequestConflictOnZeroRows(t *testing.T) {
	repo, mock := newRepoFixture(t)

	// Another shop already moved the row: the predicate matches nothing
	mock.ExpectExec("UPDATE help_requests").
		WithArgs(models.RequestStatusAccepted, 3, 5, models.RequestStatusPending, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AcceptRequest(context.Background(), 5, 3, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRequestConflictOnZeroRows(t *testing.T) {
	repo, mock := newRepoFixture(t)

	mock.ExpectExec("UPDATE help_requests").
		WithArgs(models.RequestStatusCompleted, 5, models.RequestStatusAccepted, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CompleteRequest(context.Background(), 5, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestByIDNotFound(t *testing.T) {
	repo, mock := newRepoFixture(t)

	mock.ExpectQuery("SELECT (.+) FROM help_requests WHERE id =").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRequestByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
