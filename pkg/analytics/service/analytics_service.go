package service

import "mkulima/pkg/detection/repository"

// Overview carries platform-level headline figures. The reference
// implementation returns illustrative numbers; live aggregates are
// served separately via Platform().
type Overview struct {
	TotalUsers           int64                     `json:"total_users"`
	TotalDetections      int64                     `json:"total_detections"`
	ActiveToday          int64                     `json:"active_today"`
	SuccessRate          float64                   `json:"success_rate"`
	CommonDiseases       []repository.DiseaseCount `json:"common_diseases"`
	RegionalDistribution map[string]int64          `json:"regional_distribution"`
}

// TrendPoint is one calendar day of per-category detection counts.
type TrendPoint struct {
	Date           string `json:"date"`
	MaizeDiseases  int    `json:"maize_diseases"`
	CoffeeDiseases int    `json:"coffee_diseases"`
	TomatoDiseases int    `json:"tomato_diseases"`
	BananaDiseases int    `json:"banana_diseases"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type RegionalInsight struct {
	TotalDetections int64                     `json:"total_detections"`
	TopDiseases     []repository.DiseaseCount `json:"top_diseases"`
	SuccessRate     float64                   `json:"success_rate"`
}

type AnalyticsService interface {
	Overview() Overview
	// DiseaseTrends emits one point per calendar day from today-days to
	// today inclusive. The signal is a placeholder generator, not a real
	// trend computation.
	DiseaseTrends(days int) ([]TrendPoint, Period)
	RegionalInsights() map[string]RegionalInsight
	// Platform returns live aggregates from the detection store.
	Platform() (*repository.PlatformAnalytics, error)
}
