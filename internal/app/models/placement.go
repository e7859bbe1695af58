package models

import (
	"fmt"
	"time"
)

// PlacementStatus is the review state of a placement record
type PlacementStatus string

const (
	PlacementPending  PlacementStatus = "pending"
	PlacementApproved PlacementStatus = "approved"
	PlacementRejected PlacementStatus = "rejected"
)

// IsValid reports whether s is a known status
func (s PlacementStatus) IsValid() bool {
	switch s {
	case PlacementPending, PlacementApproved, PlacementRejected:
		return true
	}
	return false
}

// TransitionTo returns the status after a review decision.
// Reviews are any-to-any: an approved record can be rejected and vice versa,
// and repeating a decision is allowed. Only approved and rejected are valid targets.
func (s PlacementStatus) TransitionTo(next PlacementStatus) (PlacementStatus, error) {
	if !s.IsValid() {
		return s, fmt.Errorf("unknown current status %q", s)
	}
	if next != PlacementApproved && next != PlacementRejected {
		return s, fmt.Errorf("cannot move placement to %q", next)
	}
	return next, nil
}

// Placement defines a student's placement record based on the 'placements' table
type Placement struct {
	ID                  int64           `json:"id" db:"id" example:"12"`
	UserID              int64           `json:"userId" db:"user_id" example:"3"`
	StudentName         string          `json:"studentName" db:"student_name" example:"Asha Verma"`
	Company             string          `json:"company" db:"company" example:"Acme Corp"`
	Package             float64         `json:"package" db:"package" example:"12.5"`
	Batch               string          `json:"batch" db:"batch" example:"2025"`
	OfferLetterURL      string          `json:"offerLetterUrl" db:"offer_letter_url"`
	IDCardURL           string          `json:"idCardUrl" db:"id_card_url"`
	InterviewExperience string          `json:"interviewExperience" db:"interview_experience"`
	IsAnonymous         bool            `json:"isAnonymous" db:"is_anonymous"`
	Status              PlacementStatus `json:"status" db:"status" example:"pending"`
	VerifiedBy          *int64          `json:"verifiedBy,omitempty" db:"verified_by"`
	CreatedAt           time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time       `json:"updatedAt" db:"updated_at"`
	Owner               *UserSummary    `json:"user,omitempty"` // Relation, no db tag
}

// ApplyReview moves the record to the given status, recording the reviewer on approval
func (p *Placement) ApplyReview(next PlacementStatus, reviewerID int64) error {
	status, err := p.Status.TransitionTo(next)
	if err != nil {
		return err
	}
	p.Status = status
	if status == PlacementApproved {
		p.VerifiedBy = &reviewerID
	}
	return nil
}
