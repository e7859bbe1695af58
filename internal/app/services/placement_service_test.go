package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
)

func submitRequest(company string, anonymous bool) *dto.SubmitPlacementRequest {
	return &dto.SubmitPlacementRequest{
		StudentName: "Asha Verma",
		Company:     company,
		Package:     12.5,
		Batch:       "2025",
		IsAnonymous: anonymous,
	}
}

func TestSubmitRequiresBothDocuments(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	cases := []struct {
		name        string
		offer, card bool
	}{
		{"no documents", false, false},
		{"offer letter only", true, false},
		{"id card only", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offer, card := newTestFile("offer.pdf"), newTestFile("card.png")
			if !tc.offer {
				offer = nil
			}
			if !tc.card {
				card = nil
			}
			_, err := env.placement.Submit(ctx, 1, submitRequest("Acme", false), offer, card)
			if !errors.Is(err, apperrors.ErrMissingDocuments) {
				t.Fatalf("expected ErrMissingDocuments, got %v", err)
			}
		})
	}

	all, _ := env.placement.ListAll(ctx)
	if len(all) != 0 {
		t.Fatalf("no record may be created, found %d", len(all))
	}
	if len(env.storage.saved) != 0 {
		t.Fatalf("nothing may be uploaded, saved %v", env.storage.saved)
	}
}

func TestSubmitCreatesPendingRecordWithDocumentURLs(t *testing.T) {
	env := newTestEnv()

	p, err := env.placement.Submit(context.Background(), 7, submitRequest(" Acme ", true), newTestFile("offer.pdf"), newTestFile("card.png"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if p.Status != models.PlacementPending || p.UserID != 7 || p.Company != "Acme" || !p.IsAnonymous {
		t.Fatalf("unexpected record %+v", p)
	}
	if p.OfferLetterURL != "uploads/offer-letters/offer.pdf" || p.IDCardURL != "uploads/id-cards/card.png" {
		t.Fatalf("unexpected document urls %q %q", p.OfferLetterURL, p.IDCardURL)
	}
}

func TestSubmitRemovesUploadsWhenSaveFails(t *testing.T) {
	env := newTestEnv()
	env.placements.createErr = errors.New("connection reset")

	_, err := env.placement.Submit(context.Background(), 1, submitRequest("Acme", false), newTestFile("offer.pdf"), newTestFile("card.png"))
	if err == nil {
		t.Fatalf("expected save failure")
	}
	if len(env.storage.deleted) != 2 {
		t.Fatalf("expected both uploads to be removed, deleted %v", env.storage.deleted)
	}
}

func TestSubmitRemovesOfferLetterWhenIDCardUploadFails(t *testing.T) {
	env := newTestEnv()
	env.storage.failOnID = true

	if _, err := env.placement.Submit(context.Background(), 1, submitRequest("Acme", false), newTestFile("offer.pdf"), newTestFile("card.png")); err == nil {
		t.Fatalf("expected upload failure")
	}
	if len(env.storage.deleted) != 1 || env.storage.deleted[0] != "offer-letters/offer.pdf" {
		t.Fatalf("expected offer letter cleanup, deleted %v", env.storage.deleted)
	}
}

func TestSubmitAllowsRepeatedSubmissions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := env.placement.Submit(ctx, 1, submitRequest("Acme", false), newTestFile("o.pdf"), newTestFile("c.png")); err != nil {
			t.Fatalf("Submit #%d: %v", i, err)
		}
	}
	mine, _ := env.placement.ListMine(ctx, 1)
	if len(mine) != 3 {
		t.Fatalf("expected 3 records, got %d", len(mine))
	}
}

func TestReviewIsPermissiveAnyToAny(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	p, err := env.placement.Submit(ctx, 1, submitRequest("Acme", false), newTestFile("o.pdf"), newTestFile("c.png"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	approved, err := env.placement.Approve(ctx, p.ID, 42)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != models.PlacementApproved || approved.VerifiedBy == nil || *approved.VerifiedBy != 42 {
		t.Fatalf("unexpected approved record %+v", approved)
	}

	rejected, err := env.placement.Reject(ctx, p.ID)
	if err != nil {
		t.Fatalf("Reject after approve: %v", err)
	}
	if rejected.Status != models.PlacementRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}

	if _, err := env.placement.Approve(ctx, p.ID, 43); err != nil {
		t.Fatalf("Approve after reject: %v", err)
	}
	if _, err := env.placement.Approve(ctx, p.ID, 43); err != nil {
		t.Fatalf("repeated Approve: %v", err)
	}

	stored, _ := env.placements.GetByID(ctx, p.ID)
	if stored.Status != models.PlacementApproved || *stored.VerifiedBy != 43 {
		t.Fatalf("expected last-applied approval by 43, got %+v", stored)
	}
}

func TestReviewMissingRecord(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.placement.Approve(ctx, 404, 1); !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Fatalf("expected ErrPlacementNotFound, got %v", err)
	}
	if _, err := env.placement.Reject(ctx, 404); !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Fatalf("expected ErrPlacementNotFound, got %v", err)
	}
}

func TestListApprovedOnlyReturnsApproved(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	var ids []int64
	for _, company := range []string{"A", "B", "C", "D", "E"} {
		p, err := env.placement.Submit(ctx, 1, submitRequest(company, false), newTestFile("o.pdf"), newTestFile("c.png"))
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		ids = append(ids, p.ID)
	}
	// A approved, B rejected, C approved then rejected, D rejected then approved, E pending
	_, _ = env.placement.Approve(ctx, ids[0], 9)
	_, _ = env.placement.Reject(ctx, ids[1])
	_, _ = env.placement.Approve(ctx, ids[2], 9)
	_, _ = env.placement.Reject(ctx, ids[2])
	_, _ = env.placement.Reject(ctx, ids[3])
	_, _ = env.placement.Approve(ctx, ids[3], 9)

	approved, err := env.placement.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(approved) != 2 {
		t.Fatalf("expected 2 approved records, got %d", len(approved))
	}
	for _, p := range approved {
		if p.Status != models.PlacementApproved {
			t.Fatalf("listApproved returned %s record %d", p.Status, p.ID)
		}
	}
	// Newest first
	if approved[0].Company != "D" || approved[1].Company != "A" {
		t.Fatalf("unexpected order: %s, %s", approved[0].Company, approved[1].Company)
	}

	pending, _ := env.placement.ListPending(ctx)
	if len(pending) != 1 || pending[0].Company != "E" {
		t.Fatalf("unexpected pending list %+v", pending)
	}

	if _, err := env.placement.GetApproved(ctx, ids[4]); !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Fatalf("pending record must not be publicly fetchable, got %v", err)
	}
	if _, err := env.placement.GetApproved(ctx, ids[0]); err != nil {
		t.Fatalf("GetApproved: %v", err)
	}
}

func TestPlacementEndToEnd(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	student, err := env.auth.Register(ctx, registerRequest("asha@college.edu", "21CS042"))
	if err != nil {
		t.Fatalf("Register student: %v", err)
	}
	admin, err := env.auth.RegisterAdmin(ctx, &dto.RegisterAdminRequest{
		RegisterRequest: *registerRequest("tpo@college.edu", "TPO1"),
		AdminSecret:     testAdminSecret,
	})
	if err != nil {
		t.Fatalf("Register admin: %v", err)
	}

	named, err := env.placement.Submit(ctx, student.ID, submitRequest("Acme", false), newTestFile("o.pdf"), newTestFile("c.png"))
	if err != nil {
		t.Fatalf("Submit named: %v", err)
	}
	anonymous, err := env.placement.Submit(ctx, student.ID, submitRequest("Globex", true), newTestFile("o2.pdf"), newTestFile("c2.png"))
	if err != nil {
		t.Fatalf("Submit anonymous: %v", err)
	}

	approved, _ := env.placement.ListApproved(ctx)
	if len(approved) != 0 {
		t.Fatalf("pending submissions must not be listed, got %d", len(approved))
	}

	if _, err := env.placement.Approve(ctx, named.ID, admin.ID); err != nil {
		t.Fatalf("Approve named: %v", err)
	}
	if _, err := env.placement.Approve(ctx, anonymous.ID, admin.ID); err != nil {
		t.Fatalf("Approve anonymous: %v", err)
	}

	approved, _ = env.placement.ListApproved(ctx)
	public := dto.NewPublicPlacementList(approved)
	if len(public) != 2 {
		t.Fatalf("expected 2 public records, got %d", len(public))
	}

	byCompany := map[string]dto.PublicPlacementResponse{}
	for _, p := range public {
		byCompany[p.Company] = p
	}

	acme := byCompany["Acme"]
	if acme.Package != 12.5 || acme.Batch != "2025" || acme.IsAnonymous {
		t.Fatalf("unexpected named projection %+v", acme)
	}
	if acme.StudentName != "Asha Verma" || acme.User == nil || acme.User.Email != "asha@college.edu" {
		t.Fatalf("named record should expose its owner, got %+v", acme)
	}

	globex := byCompany["Globex"]
	if !globex.IsAnonymous || globex.StudentName != "" || globex.User != nil {
		t.Fatalf("anonymous record leaked identity: %+v", globex)
	}
	if globex.Package != 12.5 || globex.Batch != "2025" {
		t.Fatalf("anonymous record lost public fields: %+v", globex)
	}
}
