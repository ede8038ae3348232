package repository

import "mkulima/entities"

type PlantRepository interface {
	ListAll() ([]entities.Plant, error)
}
