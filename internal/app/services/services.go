package services

import (
	"context"
	"mime/multipart"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
)

// Services defined in this package:
// - AuthService: registration paths, login and session resolution
// - PlacementService: placement submission and review
// - CompanyVisitService: recruitment posting CRUD
// - SuperAdminService: account administration and dashboard stats

// IAuthService is the contract used by the auth controller and the JWT middleware
type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.User, error)
	RegisterSuperAdmin(ctx context.Context, req *dto.RegisterSuperAdminRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// IPlacementService is the contract used by the placement and admin controllers
type IPlacementService interface {
	Submit(ctx context.Context, userID int64, req *dto.SubmitPlacementRequest, offerLetter, idCard *multipart.FileHeader) (*models.Placement, error)
	ListApproved(ctx context.Context) ([]*models.Placement, error)
	GetApproved(ctx context.Context, id int64) (*models.Placement, error)
	ListMine(ctx context.Context, userID int64) ([]*models.Placement, error)
	ListPending(ctx context.Context) ([]*models.Placement, error)
	ListAll(ctx context.Context) ([]*models.Placement, error)
	Approve(ctx context.Context, id, adminID int64) (*models.Placement, error)
	Reject(ctx context.Context, id int64) (*models.Placement, error)
}

// ICompanyVisitService is the contract used by the company visit controller
type ICompanyVisitService interface {
	Create(ctx context.Context, addedBy int64, req *dto.CreateCompanyVisitRequest) (*models.CompanyVisit, error)
	List(ctx context.Context) ([]*models.CompanyVisit, error)
	Get(ctx context.Context, id int64) (*models.CompanyVisit, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCompanyVisitRequest) (*models.CompanyVisit, error)
	Delete(ctx context.Context, id int64) error
	Archive(ctx context.Context, id int64) (*models.CompanyVisit, error)
}

// ISuperAdminService is the contract used by the superadmin controller
type ISuperAdminService interface {
	ListUsers(ctx context.Context) ([]*models.UserWithStats, error)
	Stats(ctx context.Context) (*models.UserStats, error)
	GetUserDetails(ctx context.Context, userID int64) (*models.User, []*models.Placement, error)
	Block(ctx context.Context, userID int64) (*models.User, error)
	Unblock(ctx context.Context, userID int64) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
}
