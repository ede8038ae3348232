package repository

import "mkulima/entities"

// DetectionStats are per-user aggregates. A user with no detections gets
// zeroed totals and empty breakdowns, never an error.
type DetectionStats struct {
	TotalDetections   int64            `json:"total_detections"`
	AverageConfidence float64          `json:"average_confidence"`
	SeverityBreakdown map[string]int64 `json:"severity_breakdown"`
	DiseaseBreakdown  map[string]int64 `json:"disease_breakdown"`
}

type DiseaseCount struct {
	Disease string `json:"disease"`
	Count   int64  `json:"count"`
}

// PlatformAnalytics are global aggregates over all users and detections.
type PlatformAnalytics struct {
	TotalUsers           int64            `json:"total_users"`
	TotalDetections      int64            `json:"total_detections"`
	ActiveToday          int64            `json:"active_today"`
	RegionalDistribution map[string]int64 `json:"regional_distribution"`
	CommonDiseases       []DiseaseCount   `json:"common_diseases"`
}

type DetectionRepository interface {
	// Add stores a detection row. Missing id/timestamp/advice lists and
	// the sync flag are defaulted before the insert.
	Add(d *entities.DiseaseDetection) error
	FindByID(id string) (*entities.DiseaseDetection, error)
	// ListByUser returns a window ordered by detection time descending,
	// plus the unwindowed total for pagination metadata.
	ListByUser(userID string, limit, offset int) ([]entities.DiseaseDetection, int64, error)
	ListAllByUser(userID string) ([]entities.DiseaseDetection, error)
	StatsByUser(userID string) (*DetectionStats, error)
	PlatformAnalytics() (*PlatformAnalytics, error)
}
