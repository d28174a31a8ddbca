package dto

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=50" example:"panda"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72" example:"bamboo-forest"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"panda"`
	Password string `json:"password" validate:"required" example:"bamboo-forest"`
}

type AdminLoginRequestDTO struct {
	Password string `json:"password" validate:"required" example:"admin-password"`
}

type TokenResponseDTO struct {
	Message string              `json:"message" example:"Login successful"`
	Token   string              `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Account *AccountResponseDTO `json:"account,omitempty"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"Logout successful"`
}
