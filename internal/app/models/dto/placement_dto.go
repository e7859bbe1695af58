package dto

import (
	"time"

	"github.com/yigit/placementportal/internal/app/models"
)

// SubmitPlacementRequest holds the text parts of the multipart submission.
// The offerLetter and idCard files are read separately from the form.
type SubmitPlacementRequest struct {
	StudentName         string  `form:"studentName" binding:"required,max=100" example:"Asha Verma"`
	Company             string  `form:"company" binding:"required,max=200" example:"Acme Corp"`
	Package             float64 `form:"package" binding:"gte=0" example:"12.5"`
	Batch               string  `form:"batch" binding:"required,max=16" example:"2025"`
	InterviewExperience string  `form:"interviewExperience" example:"Two technical rounds and an HR round"`
	IsAnonymous         bool    `form:"isAnonymous" example:"false"`
}

// SubmitPlacementResponse is returned after a successful submission
type SubmitPlacementResponse struct {
	PlacementID int64                  `json:"placementId" example:"12"`
	Status      models.PlacementStatus `json:"status" example:"pending"`
}

// PublicPlacementResponse is the projection of an approved record shown to everyone.
// Anonymous records drop the student name and owner block; document links are never public.
type PublicPlacementResponse struct {
	ID                  int64               `json:"id" example:"12"`
	StudentName         string              `json:"studentName,omitempty" example:"Asha Verma"`
	Company             string              `json:"company" example:"Acme Corp"`
	Package             float64             `json:"package" example:"12.5"`
	Batch               string              `json:"batch" example:"2025"`
	InterviewExperience string              `json:"interviewExperience,omitempty"`
	IsAnonymous         bool                `json:"isAnonymous"`
	User                *models.UserSummary `json:"user,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// NewPublicPlacementResponse projects p for public listing
func NewPublicPlacementResponse(p *models.Placement) PublicPlacementResponse {
	resp := PublicPlacementResponse{
		ID:                  p.ID,
		Company:             p.Company,
		Package:             p.Package,
		Batch:               p.Batch,
		InterviewExperience: p.InterviewExperience,
		IsAnonymous:         p.IsAnonymous,
		CreatedAt:           p.CreatedAt,
	}
	if !p.IsAnonymous {
		resp.StudentName = p.StudentName
		if p.Owner != nil {
			owner := *p.Owner
			// Roll numbers stay private even for named records
			owner.RollNumber = ""
			resp.User = &owner
		}
	}
	return resp
}

// NewPublicPlacementList projects a slice of approved records
func NewPublicPlacementList(placements []*models.Placement) []PublicPlacementResponse {
	out := make([]PublicPlacementResponse, 0, len(placements))
	for _, p := range placements {
		out = append(out, NewPublicPlacementResponse(p))
	}
	return out
}

// PlacementListResponse wraps placement lists for owner and admin views
type PlacementListResponse struct {
	Placements []*models.Placement `json:"placements"`
	Count      int                 `json:"count" example:"3"`
}

// NewPlacementListResponse never returns a nil slice so the JSON is always an array
func NewPlacementListResponse(placements []*models.Placement) PlacementListResponse {
	if placements == nil {
		placements = []*models.Placement{}
	}
	return PlacementListResponse{Placements: placements, Count: len(placements)}
}

// PublicPlacementListResponse wraps the public listing
type PublicPlacementListResponse struct {
	Placements []PublicPlacementResponse `json:"placements"`
	Count      int                       `json:"count" example:"3"`
}
