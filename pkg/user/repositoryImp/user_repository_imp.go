package repositoryImp

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mkulima/entities"
	"mkulima/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.PreferredLanguage == "" {
		u.PreferredLanguage = "sw"
	}
	if u.MainCrops == nil {
		u.MainCrops = []string{"maize"}
	}
	return r.db.Create(u).Error
}

func (r *userRepo) FindByID(id string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) RecordScan(id string, successful bool) error {
	updates := map[string]any{
		"total_scans": gorm.Expr("total_scans + 1"),
		"updated_at":  time.Now().UTC(),
	}
	if successful {
		updates["successful_detections"] = gorm.Expr("successful_detections + 1")
	}
	return r.db.Model(&entities.User{}).Where("id = ?", id).Updates(updates).Error
}

// Delete cascades to the user's detections. SQLite only enforces the FK
// constraint when foreign_keys is on for the connection, so the
// detections are removed explicitly inside the same transaction.
func (r *userRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&entities.DiseaseDetection{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.User{}).Error
	})
}
