package dto

import "github.com/yigit/placementportal/internal/app/models"

// PackageRangeRequest is the offered package span in LPA
type PackageRangeRequest struct {
	Min float64 `json:"min" binding:"gte=0" example:"6"`
	Max float64 `json:"max" binding:"gte=0" example:"12"`
}

// CreateCompanyVisitRequest represents a new recruitment posting
type CreateCompanyVisitRequest struct {
	CompanyName         string              `json:"companyName" binding:"required,max=200" example:"Acme Corp"`
	Location            string              `json:"location" binding:"required,max=200" example:"Bengaluru"`
	RolesOffered        []string            `json:"rolesOffered" binding:"required,min=1,dive,required" example:"SDE,Data Analyst"`
	PackageRange        PackageRangeRequest `json:"packageRange"`
	EligibilityCriteria string              `json:"eligibilityCriteria" example:"CGPA >= 7.0"`
	JobDescription      string              `json:"jobDescription"`
	Batch               string              `json:"batch" binding:"required,max=16" example:"2025"`
}

// ToModel converts the request into an active posting created by addedBy
func (r *CreateCompanyVisitRequest) ToModel(addedBy int64) *models.CompanyVisit {
	return &models.CompanyVisit{
		CompanyName:         r.CompanyName,
		Location:            r.Location,
		RolesOffered:        r.RolesOffered,
		PackageRange:        models.PackageRange{Min: r.PackageRange.Min, Max: r.PackageRange.Max},
		EligibilityCriteria: r.EligibilityCriteria,
		JobDescription:      r.JobDescription,
		Batch:               r.Batch,
		AddedBy:             &addedBy,
		Status:              models.CompanyVisitActive,
	}
}

// UpdateCompanyVisitRequest is a partial update; nil fields are left unchanged
type UpdateCompanyVisitRequest struct {
	CompanyName         *string              `json:"companyName" binding:"omitempty,min=1,max=200"`
	Location            *string              `json:"location" binding:"omitempty,min=1,max=200"`
	RolesOffered        []string             `json:"rolesOffered" binding:"omitempty,min=1,dive,required"`
	PackageRange        *PackageRangeRequest `json:"packageRange"`
	EligibilityCriteria *string              `json:"eligibilityCriteria"`
	JobDescription      *string              `json:"jobDescription"`
	Batch               *string              `json:"batch" binding:"omitempty,min=1,max=16"`
	Status              *string              `json:"status" binding:"omitempty,oneof=active archived"`
}

// IsEmpty reports whether the update changes nothing
func (r *UpdateCompanyVisitRequest) IsEmpty() bool {
	return r.CompanyName == nil && r.Location == nil && r.RolesOffered == nil && r.PackageRange == nil &&
		r.EligibilityCriteria == nil && r.JobDescription == nil && r.Batch == nil && r.Status == nil
}

// Apply copies the set fields onto v
func (r *UpdateCompanyVisitRequest) Apply(v *models.CompanyVisit) {
	if r.CompanyName != nil {
		v.CompanyName = *r.CompanyName
	}
	if r.Location != nil {
		v.Location = *r.Location
	}
	if r.RolesOffered != nil {
		v.RolesOffered = r.RolesOffered
	}
	if r.PackageRange != nil {
		v.PackageRange = models.PackageRange{Min: r.PackageRange.Min, Max: r.PackageRange.Max}
	}
	if r.EligibilityCriteria != nil {
		v.EligibilityCriteria = *r.EligibilityCriteria
	}
	if r.JobDescription != nil {
		v.JobDescription = *r.JobDescription
	}
	if r.Batch != nil {
		v.Batch = *r.Batch
	}
	if r.Status != nil {
		v.Status = models.CompanyVisitStatus(*r.Status)
	}
}

// CompanyVisitListResponse wraps the active posting list
type CompanyVisitListResponse struct {
	CompanyVisits []*models.CompanyVisit `json:"companyVisits"`
	Count         int                    `json:"count" example:"2"`
}

// NewCompanyVisitListResponse never returns a nil slice so the JSON is always an array
func NewCompanyVisitListResponse(visits []*models.CompanyVisit) CompanyVisitListResponse {
	if visits == nil {
		visits = []*models.CompanyVisit{}
	}
	return CompanyVisitListResponse{CompanyVisits: visits, Count: len(visits)}
}
