package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MediBookLabs/clinic-scheduler/internal/middleware"
	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

// UserRolesGormRepository backs the admin guard with the users table.
type UserRolesGormRepository struct {
	db *gorm.DB
}

func NewUserRolesGormRepository(db *gorm.DB) *UserRolesGormRepository {
	return &UserRolesGormRepository{db: db}
}

func (r *UserRolesGormRepository) RoleByEmail(
	ctx context.Context,
	email string,
) (string, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return "", err
	}
	return user.Role, nil
}

var _ middleware.RoleLookup = (*UserRolesGormRepository)(nil)
