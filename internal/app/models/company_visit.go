package models

import "time"

// CompanyVisitStatus is the visibility state of a recruitment posting
type CompanyVisitStatus string

const (
	CompanyVisitActive   CompanyVisitStatus = "active"
	CompanyVisitArchived CompanyVisitStatus = "archived"
)

// PackageRange is the offered package span in LPA. Min <= Max is expected but not enforced.
type PackageRange struct {
	Min float64 `json:"min" example:"6"`
	Max float64 `json:"max" example:"12"`
}

// CompanyVisit defines a recruitment posting based on the 'company_visits' table
type CompanyVisit struct {
	ID                  int64              `json:"id" db:"id"`
	CompanyName         string             `json:"companyName" db:"company_name" example:"Acme Corp"`
	Location            string             `json:"location" db:"location" example:"Bengaluru"`
	RolesOffered        []string           `json:"rolesOffered" db:"roles_offered"`
	PackageRange        PackageRange       `json:"packageRange"`
	EligibilityCriteria string             `json:"eligibilityCriteria" db:"eligibility_criteria"`
	JobDescription      string             `json:"jobDescription" db:"job_description"`
	Batch               string             `json:"batch" db:"batch" example:"2025"`
	AddedBy             *int64             `json:"addedBy,omitempty" db:"added_by"` // Nil once the creator account is deleted
	Status              CompanyVisitStatus `json:"status" db:"status" example:"active"`
	CreatedAt           time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time          `json:"updatedAt" db:"updated_at"`
	Creator             *UserSummary       `json:"creator,omitempty"` // Relation, no db tag
}
