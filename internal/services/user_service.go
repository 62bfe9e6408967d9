package services

import (
	"context"
	"errors"

	"bloghub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Upsert records the user on every successful login, refreshing the username.
func (s *UserService) Upsert(ctx context.Context, userID int64, username string) (*models.User, error) {
	user := models.User{UserID: userID, Username: username}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "updated_at"}),
		}).
		Create(&user).Error
	if err != nil {
		return nil, storeErr("upsert user", err)
	}
	return &user, nil
}

// Get returns nil without an error when the user does not exist.
func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return &user, nil
}
