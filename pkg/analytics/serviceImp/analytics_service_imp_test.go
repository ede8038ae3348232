package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDiseaseTrendsSpansInclusiveWindow(t *testing.T) {
	end := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	s := NewWithClock(nil, fixedClock(end))

	points, period := s.DiseaseTrends(7)
	require.Len(t, points, 8)
	assert.Equal(t, "2026-03-08", points[0].Date)
	assert.Equal(t, "2026-03-15", points[len(points)-1].Date)
	assert.Equal(t, "2026-03-08", period.Start)
	assert.Equal(t, "2026-03-15", period.End)
	assert.Equal(t, 7, period.Days)
}

func TestDiseaseTrendsCountsDeriveFromDayOfMonth(t *testing.T) {
	end := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	s := NewWithClock(nil, fixedClock(end))

	points, _ := s.DiseaseTrends(1)
	require.Len(t, points, 2)
	// day 14
	assert.Equal(t, 50+14%20, points[0].MaizeDiseases)
	assert.Equal(t, 30+14%15, points[0].CoffeeDiseases)
	assert.Equal(t, 25+14%10, points[0].TomatoDiseases)
	assert.Equal(t, 20+14%8, points[0].BananaDiseases)
	// day 15
	assert.Equal(t, 65, points[1].MaizeDiseases)
	assert.Equal(t, 30, points[1].CoffeeDiseases)
	assert.Equal(t, 30, points[1].TomatoDiseases)
	assert.Equal(t, 27, points[1].BananaDiseases)
}

func TestDiseaseTrendsDefaultsToThirtyDays(t *testing.T) {
	end := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	s := NewWithClock(nil, fixedClock(end))

	for _, days := range []int{0, -5} {
		points, period := s.DiseaseTrends(days)
		assert.Len(t, points, 31)
		assert.Equal(t, 30, period.Days)
	}
}

func TestOverviewFigures(t *testing.T) {
	s := New(nil)
	o := s.Overview()
	assert.Equal(t, int64(1250), o.TotalUsers)
	assert.Equal(t, int64(8920), o.TotalDetections)
	assert.Equal(t, 0.78, o.SuccessRate)
	require.Len(t, o.CommonDiseases, 4)
	assert.Equal(t, "Maize Lethal Necrosis", o.CommonDiseases[0].Disease)
	assert.Equal(t, int64(450), o.RegionalDistribution["Central"])
}

func TestRegionalInsightsRegions(t *testing.T) {
	s := New(nil)
	insights := s.RegionalInsights()
	require.Contains(t, insights, "Central")
	require.Contains(t, insights, "Rift Valley")
	require.Contains(t, insights, "Eastern")
	assert.Equal(t, int64(1250), insights["Central"].TotalDetections)
	assert.Len(t, insights["Rift Valley"].TopDiseases, 3)
}
