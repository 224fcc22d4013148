package repository

import (
	"context"
	"errors"

	"github.com/dparedes/hormigo/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// PredictionRepo stores the session history of prediction results.
// The store is append-only: results are never updated, only created,
// listed and cleared by explicit user action.
type PredictionRepo interface {
	Create(ctx context.Context, r *domain.PredictionResult) error
	GetByID(ctx context.Context, id string) (*domain.PredictionResult, error)
	// List returns results newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*domain.PredictionResult, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
