package service

import (
	"context"
	"time"

	"cropadvisor/entities"
)

// Outcome is a ranked list plus the id of the stored history record, if any.
type Outcome struct {
	Results  []entities.RecommendationResult `json:"recommendations"`
	RecordID *uint                           `json:"record_id,omitempty"`
}

type RecommendationService interface {
	Recommend(ctx context.Context, uid string, farm entities.FarmConditions, limit int) (*Outcome, error)
	History(ctx context.Context, uid string, limit int) ([]entities.RecommendationRecord, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}
