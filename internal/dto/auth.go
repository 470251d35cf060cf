package dto

// ── auth module DTOs ──

// RegisterRequest account sign-up.
type RegisterRequest struct {
	FullName   string `json:"full_name" binding:"required,min=2,max=100"`
	Email      string `json:"email"     binding:"required,email"`
	Password   string `json:"password"  binding:"required,min=6,max=72"`
	Role       string `json:"role"      binding:"omitempty,oneof=newcomer admin"`
	RememberMe bool   `json:"remember_me"`
}

// LoginRequest credential login.
type LoginRequest struct {
	Email      string `json:"email"    binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// ChangePasswordRequest own-password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password"     binding:"required,min=6,max=72"`
}

// TokenResponse login/register result.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}
