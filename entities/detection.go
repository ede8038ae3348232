package entities

import "time"

// Severity levels for a detected condition.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// DiseaseDetection is one recorded outcome of a scan. Rows are written
// once and never updated.
type DiseaseDetection struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	UserID           string    `gorm:"size:36;index;not null" json:"user_id"`
	User             *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PlantType        string    `gorm:"size:50;not null" json:"plant_type"`
	DiseaseName      string    `gorm:"size:100;not null" json:"disease_name"`
	Confidence       float64   `gorm:"not null" json:"confidence"` // 0.0 to 1.0
	Severity         string    `gorm:"size:20;not null" json:"severity"`
	ImagePath        string    `gorm:"size:255" json:"image_path,omitempty"`
	Location         string    `gorm:"size:100" json:"location,omitempty"`
	Treatments       []string  `gorm:"serializer:json" json:"treatments"`
	Preventions      []string  `gorm:"serializer:json" json:"preventions"`
	DetectedAt       time.Time `gorm:"index" json:"detected_at"`
	IsSynced         bool      `gorm:"default:true" json:"is_synced"` // offline-first clients reconcile later
	IsLocalDetection bool      `gorm:"default:false" json:"is_local_detection"`
}
