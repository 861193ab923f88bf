package auth

import "waitline/internal/application/user/usecases"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() usecases.LoginCommand {
	return usecases.LoginCommand{
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginResponse struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
