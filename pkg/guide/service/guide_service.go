package service

import (
	"context"

	"cropadvisor/entities"
)

type IngestInput struct {
	Crop      string `json:"crop"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	SourceURL string `json:"source_url"`
}

type SearchHit struct {
	GuideID   uint    `json:"guide_id"`
	CropKey   string  `json:"crop_key"`
	Title     string  `json:"title"`
	SourceURL string  `json:"source_url,omitempty"`
	Snippet   string  `json:"snippet"`
	Score     float64 `json:"score"`
}

type GuideService interface {
	Ingest(ctx context.Context, in IngestInput) (*entities.Guide, error)
	IngestURL(ctx context.Context, rawURL, crop, title string) (*entities.Guide, error)
	ForCrop(ctx context.Context, crop string) ([]entities.Guide, error)
	Search(ctx context.Context, q string, k int) ([]SearchHit, error)
}
