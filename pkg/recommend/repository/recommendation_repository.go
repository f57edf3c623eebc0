package repository

import (
	"context"
	"time"

	"cropadvisor/entities"
)

type RecommendationRepository interface {
	Create(ctx context.Context, r *entities.RecommendationRecord) error
	// ListByUser returns the caller's records newest first.
	ListByUser(ctx context.Context, uid string, limit int) ([]entities.RecommendationRecord, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
