package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	List() ([]*entity.User, error)
	Create(user *entity.User) error
	// Delete devuelve el número de filas eliminadas (0 si no existía).
	Delete(id int64) (int64, error)
	Count() (int64, error)
}
