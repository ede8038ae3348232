package serviceImp

import (
	"time"

	"mkulima/pkg/analytics/service"
	"mkulima/pkg/detection/repository"
)

type svc struct {
	detections repository.DetectionRepository
	now        func() time.Time
}

func New(detections repository.DetectionRepository) service.AnalyticsService {
	return &svc{detections: detections, now: func() time.Time { return time.Now().UTC() }}
}

// NewWithClock pins the clock for deterministic trend output in tests.
func NewWithClock(detections repository.DetectionRepository, now func() time.Time) service.AnalyticsService {
	return &svc{detections: detections, now: now}
}

func (s *svc) Overview() service.Overview {
	return service.Overview{
		TotalUsers:      1250,
		TotalDetections: 8920,
		ActiveToday:     187,
		SuccessRate:     0.78,
		CommonDiseases: []repository.DiseaseCount{
			{Disease: "Maize Lethal Necrosis", Count: 2340},
			{Disease: "Coffee Leaf Rust", Count: 1876},
			{Disease: "Tomato Late Blight", Count: 1567},
			{Disease: "Banana Sigatoka", Count: 1234},
		},
		RegionalDistribution: map[string]int64{
			"Central":     450,
			"Rift Valley": 320,
			"Eastern":     280,
			"Western":     200,
		},
	}
}

func (s *svc) DiseaseTrends(days int) ([]service.TrendPoint, service.Period) {
	if days <= 0 {
		days = 30
	}
	end := s.now()
	start := end.AddDate(0, 0, -days)

	var points []service.TrendPoint
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		day := cur.Day()
		points = append(points, service.TrendPoint{
			Date:           cur.Format("2006-01-02"),
			MaizeDiseases:  50 + day%20,
			CoffeeDiseases: 30 + day%15,
			TomatoDiseases: 25 + day%10,
			BananaDiseases: 20 + day%8,
		})
	}

	return points, service.Period{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
		Days:  days,
	}
}

func (s *svc) RegionalInsights() map[string]service.RegionalInsight {
	return map[string]service.RegionalInsight{
		"Central": {
			TotalDetections: 1250,
			TopDiseases: []repository.DiseaseCount{
				{Disease: "Maize Lethal Necrosis", Count: 450},
				{Disease: "Coffee Berry Disease", Count: 320},
				{Disease: "Tomato Early Blight", Count: 280},
			},
			SuccessRate: 0.82,
		},
		"Rift Valley": {
			TotalDetections: 980,
			TopDiseases: []repository.DiseaseCount{
				{Disease: "Maize Common Rust", Count: 380},
				{Disease: "Wheat Rust", Count: 290},
				{Disease: "Maize Gray Leaf Spot", Count: 210},
			},
			SuccessRate: 0.75,
		},
		"Eastern": {
			TotalDetections: 760,
			TopDiseases: []repository.DiseaseCount{
				{Disease: "Coffee Leaf Rust", Count: 320},
				{Disease: "Maize Northern Leaf Blight", Count: 240},
				{Disease: "Tomato Late Blight", Count: 150},
			},
			SuccessRate: 0.79,
		},
	}
}

func (s *svc) Platform() (*repository.PlatformAnalytics, error) {
	return s.detections.PlatformAnalytics()
}
