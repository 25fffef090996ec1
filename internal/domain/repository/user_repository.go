package repository

import "github.com/blueshipsync/shipsync-api/internal/domain/entity"

// UserRepository persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
