package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest body para POST /api/auth/register.
// CompanyID vacío crea un usuario del personal de la instalación.
type RegisterRequest struct {
	CompanyID string `json:"company_id,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
}

// UserResponse usuario en respuestas (sin hash de password).
type UserResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id,omitempty"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
