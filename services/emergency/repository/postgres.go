package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

const requestColumns = `id, title, description, latitude, longitude, status,
	priority, customer_id, assigned_shop_id, created_at, version`

// CreateRequest inserts a new help request in pending state
func (r *RequestRepo) CreateRequest(ctx context.Context, request *models.HelpRequest) error {
	query := `
		INSERT INTO help_requests
			(title, description, latitude, longitude, status, priority, customer_id, created_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		request.Title, request.Description,
		request.Latitude, request.Longitude,
		request.Status, request.Priority,
		request.CustomerID, request.CreatedAt,
	).Scan(&request.ID)
	if err != nil {
		return fmt.Errorf("failed to insert help request: %w", err)
	}

	request.Version = 1
	return nil
}

// GetRequestByID returns a single help request
func (r *RequestRepo) GetRequestByID(ctx context.Context, id int) (*models.HelpRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM help_requests WHERE id = $1`, requestColumns)

	var request models.HelpRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: help request", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get help request: %w", err)
	}

	return &request, nil
}

// ListAllRequests returns every help request, newest first
func (r *RequestRepo) ListAllRequests(ctx context.Context) ([]models.HelpRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM help_requests ORDER BY created_at DESC`, requestColumns)
	return r.selectRequests(ctx, query)
}

// ListRequestsByCustomer returns a customer's help requests, newest first
func (r *RequestRepo) ListRequestsByCustomer(ctx context.Context, customerID int) ([]models.HelpRequest, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM help_requests WHERE customer_id = $1 ORDER BY created_at DESC`, requestColumns)
	return r.selectRequests(ctx, query, customerID)
}

// ListRequestsByShop returns the requests assigned to a shop, newest first
func (r *RequestRepo) ListRequestsByShop(ctx context.Context, shopID int) ([]models.HelpRequest, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM help_requests WHERE assigned_shop_id = $1 ORDER BY created_at DESC`, requestColumns)
	return r.selectRequests(ctx, query, shopID)
}

// ListRequestsByStatus returns the requests in the given state, newest first
func (r *RequestRepo) ListRequestsByStatus(ctx context.Context, status models.RequestStatus) ([]models.HelpRequest, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM help_requests WHERE status = $1 ORDER BY created_at DESC`, requestColumns)
	return r.selectRequests(ctx, query, status)
}

func (r *RequestRepo) selectRequests(ctx context.Context, query string, args ...interface{}) ([]models.HelpRequest, error) {
	var requests []models.HelpRequest
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list help requests: %w", err)
	}
	return requests, nil
}

// AcceptRequest assigns the shop to a pending request. The status and
// version predicates make the transition atomic; zero affected rows means
// another shop won the race or the request moved on.
func (r *RequestRepo) AcceptRequest(ctx context.Context, id, shopID int, version int64) error {
	query := `
		UPDATE help_requests
		SET status = $1, assigned_shop_id = $2, version = version + 1
		WHERE id = $3 AND status = $4 AND version = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		models.RequestStatusAccepted, shopID,
		id, models.RequestStatusPending, version,
	)
	if err != nil {
		return fmt.Errorf("failed to accept help request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read accept result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: help request %d was already taken or modified", apperrors.ErrConflict, id)
	}

	return nil
}

// CompleteRequest closes an accepted request, guarded by the same version
// predicate as acceptance.
func (r *RequestRepo) CompleteRequest(ctx context.Context, id int, version int64) error {
	query := `
		UPDATE help_requests
		SET status = $1, version = version + 1
		WHERE id = $2 AND status = $3 AND version = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		models.RequestStatusCompleted,
		id, models.RequestStatusAccepted, version,
	)
	if err != nil {
		return fmt.Errorf("failed to complete help request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read complete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: help request %d was modified concurrently", apperrors.ErrConflict, id)
	}

	return nil
}
