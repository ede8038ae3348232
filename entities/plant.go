package entities

import "time"

// Plant is reference/catalog data seeded at boot, not created per-request.
type Plant struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	ScientificName string    `gorm:"size:100" json:"scientific_name"`
	LocalName      string    `gorm:"size:50" json:"local_name"`
	Category       string    `gorm:"size:20" json:"category"` // cereal, vegetable, fruit, cash_crop
	CommonDiseases []string  `gorm:"serializer:json" json:"common_diseases"`
	ImageURL       string    `gorm:"size:255" json:"image_url,omitempty"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
