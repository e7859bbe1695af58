package dto

import (
	"time"

	"github.com/yigit/placementportal/internal/app/models"
)

// RegisterRequest represents a student registration request
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100" example:"Asha Verma"`
	Email      string `json:"email" binding:"required,email" example:"asha@college.edu"`
	Password   string `json:"password" binding:"required,min=6" example:"secret123"`
	RollNumber string `json:"rollNumber" binding:"required,rollnumber" example:"21CS042"`
	Batch      string `json:"batch" binding:"required,max=16" example:"2025"`
}

// RegisterAdminRequest is a registration gated by the admin secret code
type RegisterAdminRequest struct {
	RegisterRequest
	AdminSecret string `json:"adminSecret" binding:"required"`
}

// RegisterSuperAdminRequest is a registration gated by the superadmin secret code
type RegisterSuperAdminRequest struct {
	RegisterRequest
	SuperSecretCode string `json:"superSecretCode" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"asha@college.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserResponse is the public projection of an account. It never carries the password hash.
type UserResponse struct {
	ID              int64       `json:"id" example:"1"`
	Name            string      `json:"name" example:"Asha Verma"`
	Email           string      `json:"email" example:"asha@college.edu"`
	RollNumber      string      `json:"rollNumber" example:"21CS042"`
	Batch           string      `json:"batch" example:"2025"`
	Role            models.Role `json:"role" example:"student"`
	Verified        bool        `json:"verified"`
	IsBlocked       bool        `json:"isBlocked"`
	ProfilePhotoURL *string     `json:"profilePhoto,omitempty"`
	LinkedIn        string      `json:"linkedin,omitempty"`
	GitHub          string      `json:"github,omitempty"`
	Portfolio       string      `json:"portfolio,omitempty"`
	Skills          string      `json:"skills,omitempty"`
	Bio             string      `json:"bio,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// NewUserResponse builds the account projection of u, profile extras included
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		RollNumber:      u.RollNumber,
		Batch:           u.Batch,
		Role:            u.Role,
		Verified:        u.Verified,
		IsBlocked:       u.IsBlocked,
		ProfilePhotoURL: u.ProfilePhotoURL,
		LinkedIn:        u.LinkedIn,
		GitHub:          u.GitHub,
		Portfolio:       u.Portfolio,
		Skills:          u.Skills,
		Bio:             u.Bio,
		CreatedAt:       u.CreatedAt,
	}
}

// RegisterResponse is returned after any successful registration
type RegisterResponse struct {
	UserID int64         `json:"userId" example:"1"`
	User   *UserResponse `json:"user"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"604800"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *UserResponse `json:"user"`
}
