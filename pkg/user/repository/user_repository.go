package repository

import "mkulima/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByID(id string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	// RecordScan bumps the scan counters exactly once per persisted detection.
	RecordScan(id string, successful bool) error
	// Delete removes the user and all owned detections in one transaction.
	Delete(id string) error
}
