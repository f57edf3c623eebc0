package entities

import "time"

type Guide struct {
	GuideID   uint      `gorm:"primaryKey" json:"guide_id"`
	CropKey   string    `gorm:"index" json:"crop_key"`
	Title     string    `json:"title"`
	SourceURL string    `json:"source_url"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
