package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cropadvisor/entities"
)

const historyIndex = "idx_records_user_created"

// Open connects to the SQLite file at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&entities.RecommendationRecord{}, &entities.Guide{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	if err := ensureHistoryIndex(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// ensureHistoryIndex adds the (user_id, created_at) index used by history
// lookups when the table predates it.
func ensureHistoryIndex(db *gorm.DB) error {
	var name string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, historyIndex).Scan(&name).Error; err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if name != "" {
		return nil
	}
	sql := fmt.Sprintf(`CREATE INDEX %s ON recommendation_records (user_id, created_at DESC)`, historyIndex)
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("create %s: %w", historyIndex, err)
	}
	return nil
}
