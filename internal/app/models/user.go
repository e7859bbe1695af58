package models

import (
	"time"
)

// User defines the account model based on the 'users' table
type User struct {
	ID              int64     `json:"id" db:"id" example:"1"`
	Name            string    `json:"name" db:"name" example:"Asha Verma"`
	Email           string    `json:"email" db:"email" example:"asha@college.edu"`
	Password        string    `json:"-" db:"password"`
	RollNumber      string    `json:"rollNumber" db:"roll_number" example:"21CS042"`
	Batch           string    `json:"batch" db:"batch" example:"2025"`
	Role            Role      `json:"role" db:"role" example:"student"`
	Verified        bool      `json:"verified" db:"verified"`
	IsBlocked       bool      `json:"isBlocked" db:"is_blocked"`
	ProfilePhotoURL *string   `json:"profilePhoto,omitempty" db:"profile_photo_url"`
	LinkedIn        string    `json:"linkedin" db:"linkedin"`
	GitHub          string    `json:"github" db:"github"`
	Portfolio       string    `json:"portfolio" db:"portfolio"`
	Skills          string    `json:"skills" db:"skills"`
	Bio             string    `json:"bio" db:"bio"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// IsSuperAdmin reports whether the account is protected from administration actions
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// UserSummary is the owner/creator block joined onto placements and company visits
type UserSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber,omitempty"`
	Batch      string `json:"batch,omitempty"`
}

// UserWithStats pairs an account with its number of placement submissions
type UserWithStats struct {
	User
	PlacementCount int64 `json:"placementCount"`
}

// UserStats holds the superadmin dashboard counters
type UserStats struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalStudents       int64 `json:"totalStudents"`
	TotalAdmins         int64 `json:"totalAdmins"`
	TotalSuperAdmins    int64 `json:"totalSuperAdmins"`
	BlockedUsers        int64 `json:"blockedUsers"`
	ActiveUsers         int64 `json:"activeUsers"`
	RecentRegistrations int64 `json:"recentRegistrations"`
}
