package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleOrdinario = "ordinario"
)

// User representa un usuario de la aplicación. La clave se guarda hasheada con bcrypt.
type User struct {
	ID           int64
	Name         string // nombre para mostrar
	Username     string // login, único
	PasswordHash string
	Role         string // admin | ordinario
	CreatedAt    time.Time
}

// ValidRole indica si el rol es uno de los aceptados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOrdinario
}
