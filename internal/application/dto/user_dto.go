package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CreateUserRequest body para POST /api/usuarios (solo admin).
type CreateUserRequest struct {
	Name     string `json:"nombre"`
	Username string `json:"usuario"`
	Password string `json:"clave"`
	Role     string `json:"rol"`
}

// UserResponse usuario sin el hash de la clave.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Username string `json:"usuario"`
	Role     string `json:"rol"`
}

// ToUserResponse convierte la entidad al DTO de salida.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Username: u.Username, Role: u.Role}
}
