package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Credenciales del admin inicial que se crea cuando la tabla de usuarios está vacía.
const (
	bootstrapAdminName     = "Administrador"
	bootstrapAdminUsername = "admin"
	bootstrapAdminPassword = "admin123"
)

// UserUseCase administración de usuarios (solo admin en la capa HTTP).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve todos los usuarios, sin hashes.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario con la clave hasheada. Login duplicado → ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Username == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Delete elimina un usuario. Un admin no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id int64) (int64, error) {
	if actorID == id {
		return 0, domain.ErrSelfDelete
	}
	deleted, err := uc.userRepo.Delete(id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.ErrNotFound
	}
	return deleted, nil
}

// EnsureInitialAdmin crea el usuario admin/admin123 si no existe ningún usuario.
// Devuelve true si lo creó, para que el arranque lo deje registrado en el log.
func (uc *UserUseCase) EnsureInitialAdmin(ctx context.Context) (bool, error) {
	count, err := uc.userRepo.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	err = uc.userRepo.Create(&entity.User{
		Name:         bootstrapAdminName,
		Username:     bootstrapAdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
