package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/placementportal/internal/app/models"
)

func TestPublicPlacementHonorsAnonymity(t *testing.T) {
	owner := &models.UserSummary{ID: 3, Name: "Asha Verma", Email: "asha@college.edu", RollNumber: "21CS042", Batch: "2025"}
	named := &models.Placement{ID: 1, StudentName: "Asha Verma", Company: "Acme", Package: 12.5, Batch: "2025", Owner: owner,
		OfferLetterURL: "uploads/offer-letters/a.pdf", IDCardURL: "uploads/id-cards/a.png"}
	anonymous := *named
	anonymous.ID = 2
	anonymous.IsAnonymous = true

	list := NewPublicPlacementList([]*models.Placement{named, &anonymous})

	if list[0].StudentName != "Asha Verma" || list[0].User == nil || list[0].User.Name != "Asha Verma" {
		t.Fatalf("named record lost its owner: %+v", list[0])
	}
	if list[0].User.RollNumber != "" {
		t.Fatalf("roll number must not be public")
	}
	if owner.RollNumber != "21CS042" {
		t.Fatalf("projection must not mutate the source owner")
	}

	if list[1].StudentName != "" || list[1].User != nil {
		t.Fatalf("anonymous record leaked identity: %+v", list[1])
	}
	if list[1].Company != "Acme" || list[1].Package != 12.5 || list[1].Batch != "2025" || !list[1].IsAnonymous {
		t.Fatalf("anonymous record lost public fields: %+v", list[1])
	}

	body, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "uploads/") {
		t.Fatalf("document urls must not be public: %s", body)
	}
}

func TestUserResponseOmitsPassword(t *testing.T) {
	u := &models.User{ID: 1, Name: "A", Email: "a@b.co", Password: "$2a$10$hash", Role: models.RoleStudent}
	body, err := json.Marshal(NewUserResponse(u))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "hash") || strings.Contains(string(body), "password") {
		t.Fatalf("password leaked: %s", body)
	}
}

func TestProfileExtrasStayInAccountProjection(t *testing.T) {
	owner := &models.UserSummary{ID: 3, Name: "Asha Verma", Email: "asha@college.edu"}
	u := &models.User{ID: 3, Name: "Asha Verma", Email: "asha@college.edu", Role: models.RoleStudent,
		LinkedIn: "in/asha", GitHub: "gh/asha", Bio: "backend"}

	account, err := json.Marshal(NewUserResponse(u))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"linkedin":"in/asha"`, `"github":"gh/asha"`, `"bio":"backend"`} {
		if !strings.Contains(string(account), want) {
			t.Fatalf("account projection missing %s: %s", want, account)
		}
	}

	public, err := json.Marshal(NewPublicPlacementResponse(&models.Placement{ID: 1, StudentName: u.Name, Owner: owner}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(public), "linkedin") || strings.Contains(string(public), "bio") {
		t.Fatalf("public placement projection carries profile extras: %s", public)
	}
}

func TestUpdateCompanyVisitApplyIsPartial(t *testing.T) {
	visit := &models.CompanyVisit{CompanyName: "Acme", Location: "Pune", Batch: "2025", Status: models.CompanyVisitActive}
	loc := "Bengaluru"
	req := &UpdateCompanyVisitRequest{Location: &loc}

	if req.IsEmpty() {
		t.Fatalf("request with location should not be empty")
	}
	req.Apply(visit)

	if visit.Location != "Bengaluru" || visit.CompanyName != "Acme" || visit.Batch != "2025" {
		t.Fatalf("unexpected visit after partial update: %+v", visit)
	}
	if !(&UpdateCompanyVisitRequest{}).IsEmpty() {
		t.Fatalf("zero request should be empty")
	}
}

func TestHandleValidationError(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(payload{Email: "nope"})

	detail := HandleValidationError(err)
	if detail.Code != ErrorCodeValidationFailed || detail.Field != "Email" {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if detail.Message != "Email must be a valid email address" {
		t.Fatalf("unexpected message %q", detail.Message)
	}

	generic := HandleValidationError(errors.New("unexpected EOF"))
	if generic.Message != "Invalid request format" || generic.Details != "unexpected EOF" {
		t.Fatalf("unexpected generic detail %+v", generic)
	}
}
