package entities

import "time"

// User is a registered farmer. IDs are opaque UUID strings so records
// created offline on the mobile client can be merged without renumbering.
type User struct {
	ID                   string    `gorm:"primaryKey;size:36" json:"id"`
	Name                 string    `gorm:"size:100;not null" json:"name"`
	Email                string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone                string    `gorm:"size:20" json:"phone"`
	PreferredLanguage    string    `gorm:"size:10;default:sw" json:"preferred_language"` // sw, en, kik, luo
	Region               string    `gorm:"size:50;not null" json:"region"`
	FarmSize             float64   `gorm:"default:0" json:"farm_size"` // acres
	MainCrops            []string  `gorm:"serializer:json" json:"main_crops"`
	TotalScans           int       `gorm:"default:0" json:"total_scans"`
	SuccessfulDetections int       `gorm:"default:0" json:"successful_detections"`
	IsPremium            bool      `gorm:"default:false" json:"is_premium"`
	IsAdmin              bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SuccessRate never divides by zero: a user with no scans has rate 0.
func (u *User) SuccessRate() float64 {
	total := u.TotalScans
	if total < 1 {
		total = 1
	}
	return float64(u.SuccessfulDetections) / float64(total)
}
