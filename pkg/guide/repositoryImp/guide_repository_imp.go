package repositoryImp

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"cropadvisor/entities"
	"cropadvisor/pkg/guide/repository"
)

type guideRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GuideRepository { return &guideRepo{db} }

func (r *guideRepo) Save(ctx context.Context, g *entities.Guide) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if g.SourceURL != "" {
			var prev entities.Guide
			err := tx.Where("source_url = ?", g.SourceURL).First(&prev).Error
			switch {
			case err == nil:
				g.GuideID = prev.GuideID
				g.CreatedAt = prev.CreatedAt
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}
		return tx.Save(g).Error
	})
}

func (r *guideRepo) ListByCrop(ctx context.Context, cropKey string) ([]entities.Guide, error) {
	var out []entities.Guide
	err := r.db.WithContext(ctx).Where("crop_key = ?", cropKey).Order("guide_id DESC").Find(&out).Error
	return out, err
}

func (r *guideRepo) Matching(ctx context.Context, terms []string) ([]entities.Guide, error) {
	var out []entities.Guide
	if len(terms) == 0 {
		return out, nil
	}
	q := r.db.WithContext(ctx).Model(&entities.Guide{})
	cond := r.db.Where("1 = 0")
	for _, t := range terms {
		like := "%" + escapeLike(strings.ToLower(t)) + "%"
		cond = cond.Or(`lower(title) LIKE ? ESCAPE '\'`, like).Or(`lower(text) LIKE ? ESCAPE '\'`, like)
	}
	err := q.Where(cond).Order("guide_id").Find(&out).Error
	return out, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
