package dto

import "github.com/yigit/placementportal/internal/app/models"

// UserListItem is one row of the superadmin user table
type UserListItem struct {
	*UserResponse
	PlacementCount int64 `json:"placementCount" example:"2"`
}

// UserListResponse is the superadmin user table
type UserListResponse struct {
	Users []UserListItem `json:"users"`
	Count int            `json:"count" example:"10"`
}

// NewUserListResponse projects accounts with their submission counts
func NewUserListResponse(users []*models.UserWithStats) UserListResponse {
	items := make([]UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserListItem{
			UserResponse:   NewUserResponse(&u.User),
			PlacementCount: u.PlacementCount,
		})
	}
	return UserListResponse{Users: items, Count: len(items)}
}

// UserDetailsResponse is a single account with every placement it submitted
type UserDetailsResponse struct {
	User       *UserResponse       `json:"user"`
	Placements []*models.Placement `json:"placements"`
}

// NewUserDetailsResponse never returns a nil placements slice
func NewUserDetailsResponse(u *models.User, placements []*models.Placement) UserDetailsResponse {
	if placements == nil {
		placements = []*models.Placement{}
	}
	return UserDetailsResponse{User: NewUserResponse(u), Placements: placements}
}
