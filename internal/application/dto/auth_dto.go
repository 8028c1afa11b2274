package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT más los datos básicos del usuario autenticado.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"nombre"`
	Role  string `json:"rol"`
}
