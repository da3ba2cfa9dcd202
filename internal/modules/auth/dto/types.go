package dto

import "time"

type LoginInput struct {
	Email    string `validate:"required,email,max=50"`
	Password string `validate:"required"`
}

type RegisterInput struct {
	Name     string `validate:"required,min=3,max=30,personname"`
	Email    string `validate:"required,email,min=5,max=50"`
	Password string `validate:"required,password"`
}

type ForgotPasswordInput struct {
	Email string `validate:"required,email,min=5,max=50"`
}

type ForgotPasswordOutput struct {
	ResetToken string
}

type ResetPasswordInput struct {
	Token       string `validate:"required"`
	NewPassword string `validate:"required,password"`
}

type SessionOutput struct {
	LoggedIn  bool
	UserID    string
	Role      string
	ExpiresAt time.Time
}

type ProfileOutput struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type UpdateProfileInput struct {
	Name            string `validate:"required,min=3,max=30,personname"`
	Email           string `validate:"required,email,min=5,max=50"`
	NewPassword     string `validate:"omitempty,password"`
	NewSecurityCode string `validate:"omitempty,min=4,max=20"`
}

type UpdateProfileOutput struct {
	Message   string
	LoggedOut bool
	Profile   ProfileOutput
}
