package serviceImp

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/recommend/repository"
	"cropadvisor/pkg/recommend/service"
	"cropadvisor/pkg/scoring"
)

type recommendationSvc struct {
	cat      *catalog.Catalog
	r        repository.RecommendationRepository
	log      *zap.Logger
	maxLimit int
	now      func() time.Time
}

// NewRecommendationService wires the scorer to history storage. A nil repository
// disables history. maxLimit caps History; zero means no cap.
func NewRecommendationService(cat *catalog.Catalog, r repository.RecommendationRepository, log *zap.Logger, maxLimit int) service.RecommendationService {
	return &recommendationSvc{cat: cat, r: r, log: log, maxLimit: maxLimit, now: time.Now}
}

func (s *recommendationSvc) Recommend(ctx context.Context, uid string, farm entities.FarmConditions, limit int) (*service.Outcome, error) {
	if farm.Climate == nil {
		return nil, fmt.Errorf("%w: climate is required", entities.ErrInvalidInput)
	}
	if farm.Soil == nil {
		return nil, fmt.Errorf("%w: soil is required", entities.ErrInvalidInput)
	}

	out := &service.Outcome{Results: scoring.Recommend(s.cat.All(), farm, limit)}
	if uid == "" || s.r == nil {
		return out, nil
	}

	rec := &entities.RecommendationRecord{
		UserID:    uid,
		Location:  farm.Location,
		Climate:   farm.Climate,
		Soil:      farm.Soil,
		Resources: farm.Resources,
		Results:   out.Results,
	}
	if err := s.r.Create(ctx, rec); err != nil {
		s.log.Warn("store recommendation", zap.String("uid", uid), zap.Error(err))
		return out, nil
	}
	out.RecordID = &rec.RecordID
	return out, nil
}

func (s *recommendationSvc) History(ctx context.Context, uid string, limit int) ([]entities.RecommendationRecord, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: caller identity is required", entities.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = scoring.DefaultLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}
	if s.r == nil {
		return []entities.RecommendationRecord{}, nil
	}
	recs, err := s.r.ListByUser(ctx, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return recs, nil
}

func (s *recommendationSvc) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if s.r == nil || olderThan <= 0 {
		return 0, nil
	}
	n, err := s.r.DeleteBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return n, nil
}
