package repositoryImp

import (
	"gorm.io/gorm"

	"mkulima/entities"
	"mkulima/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) ListAll() ([]entities.Plant, error) {
	var ps []entities.Plant
	return ps, r.db.Order("name").Find(&ps).Error
}
