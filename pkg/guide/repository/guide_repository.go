package repository

import (
	"context"

	"cropadvisor/entities"
)

type GuideRepository interface {
	// Save inserts g, or replaces the stored guide with the same source URL.
	Save(ctx context.Context, g *entities.Guide) error
	ListByCrop(ctx context.Context, cropKey string) ([]entities.Guide, error)
	// Matching returns guides whose title or text contains any of terms.
	Matching(ctx context.Context, terms []string) ([]entities.Guide, error)
}
