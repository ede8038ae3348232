package repositoryImp

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mkulima/entities"
	"mkulima/pkg/detection/repository"
)

type detectionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DetectionRepository { return &detectionRepo{db} }

func (r *detectionRepo) Add(d *entities.DiseaseDetection) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.DetectedAt.IsZero() {
		d.DetectedAt = time.Now().UTC()
	}
	if d.Treatments == nil {
		d.Treatments = []string{}
	}
	if d.Preventions == nil {
		d.Preventions = []string{}
	}
	return r.db.Create(d).Error
}

func (r *detectionRepo) FindByID(id string) (*entities.DiseaseDetection, error) {
	var d entities.DiseaseDetection
	if err := r.db.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *detectionRepo) ListByUser(userID string, limit, offset int) ([]entities.DiseaseDetection, int64, error) {
	var total int64
	if err := r.db.Model(&entities.DiseaseDetection{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entities.DiseaseDetection
	err := r.db.Where("user_id = ?", userID).
		Order("detected_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *detectionRepo) ListAllByUser(userID string) ([]entities.DiseaseDetection, error) {
	var items []entities.DiseaseDetection
	err := r.db.Where("user_id = ?", userID).
		Order("detected_at DESC").
		Find(&items).Error
	return items, err
}

func (r *detectionRepo) StatsByUser(userID string) (*repository.DetectionStats, error) {
	stats := &repository.DetectionStats{
		SeverityBreakdown: map[string]int64{},
		DiseaseBreakdown:  map[string]int64{},
	}

	row := struct {
		Total int64
		Avg   *float64
	}{}
	err := r.db.Model(&entities.DiseaseDetection{}).
		Select("COUNT(id) AS total, AVG(confidence) AS avg").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	stats.TotalDetections = row.Total
	if row.Avg != nil {
		stats.AverageConfidence = *row.Avg
	}

	type group struct {
		Key   string
		Count int64
	}
	var bySeverity []group
	err = r.db.Model(&entities.DiseaseDetection{}).
		Select("severity AS key, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Group("severity").
		Scan(&bySeverity).Error
	if err != nil {
		return nil, err
	}
	for _, g := range bySeverity {
		stats.SeverityBreakdown[g.Key] = g.Count
	}

	var byDisease []group
	err = r.db.Model(&entities.DiseaseDetection{}).
		Select("disease_name AS key, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Group("disease_name").
		Scan(&byDisease).Error
	if err != nil {
		return nil, err
	}
	for _, g := range byDisease {
		stats.DiseaseBreakdown[g.Key] = g.Count
	}

	return stats, nil
}

func (r *detectionRepo) PlatformAnalytics() (*repository.PlatformAnalytics, error) {
	out := &repository.PlatformAnalytics{
		RegionalDistribution: map[string]int64{},
		CommonDiseases:       []repository.DiseaseCount{},
	}

	if err := r.db.Model(&entities.User{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.DiseaseDetection{}).Count(&out.TotalDetections).Error; err != nil {
		return nil, err
	}

	// "active today" matches the calendar date, not a rolling 24h window
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	err := r.db.Model(&entities.DiseaseDetection{}).
		Where("detected_at >= ? AND detected_at < ?", dayStart, dayEnd).
		Count(&out.ActiveToday).Error
	if err != nil {
		return nil, err
	}

	type regionRow struct {
		Region string
		Count  int64
	}
	var regions []regionRow
	err = r.db.Model(&entities.DiseaseDetection{}).
		Select("users.region AS region, COUNT(disease_detections.id) AS count").
		Joins("JOIN users ON users.id = disease_detections.user_id").
		Group("users.region").
		Scan(&regions).Error
	if err != nil {
		return nil, err
	}
	for _, row := range regions {
		out.RegionalDistribution[row.Region] = row.Count
	}

	err = r.db.Model(&entities.DiseaseDetection{}).
		Select("disease_name AS disease, COUNT(id) AS count").
		Group("disease_name").
		Order("count DESC").
		Limit(10).
		Scan(&out.CommonDiseases).Error
	if err != nil {
		return nil, err
	}

	return out, nil
}
