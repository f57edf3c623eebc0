package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cropadvisor/entities"
	"cropadvisor/pkg/recommend/repository"
)

type recommendationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendationRepository { return &recommendationRepo{db} }

func (r *recommendationRepo) Create(ctx context.Context, rec *entities.RecommendationRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepo) ListByUser(ctx context.Context, uid string, limit int) ([]entities.RecommendationRecord, error) {
	var out []entities.RecommendationRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("created_at DESC").Order("record_id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *recommendationRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&entities.RecommendationRecord{})
	return res.RowsAffected, res.Error
}
