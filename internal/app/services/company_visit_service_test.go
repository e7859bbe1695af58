package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
)

func createVisitRequest(company string) *dto.CreateCompanyVisitRequest {
	return &dto.CreateCompanyVisitRequest{
		CompanyName:  company,
		Location:     "Pune",
		RolesOffered: []string{"SDE"},
		PackageRange: dto.PackageRangeRequest{Min: 6, Max: 12},
		Batch:        "2025",
	}
}

func TestCompanyVisitLifecycle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first, err := env.visit.Create(ctx, 1, createVisitRequest("Acme"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Status != models.CompanyVisitActive || first.AddedBy == nil || *first.AddedBy != 1 {
		t.Fatalf("unexpected visit %+v", first)
	}
	second, _ := env.visit.Create(ctx, 1, createVisitRequest("Globex"))

	list, _ := env.visit.List(ctx)
	if len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	loc := "Bengaluru"
	updated, err := env.visit.Update(ctx, first.ID, &dto.UpdateCompanyVisitRequest{Location: &loc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Location != "Bengaluru" || updated.CompanyName != "Acme" {
		t.Fatalf("partial update changed the wrong fields: %+v", updated)
	}

	archived, err := env.visit.Archive(ctx, first.ID)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if archived.Status != models.CompanyVisitArchived {
		t.Fatalf("expected archived, got %s", archived.Status)
	}

	list, _ = env.visit.List(ctx)
	if len(list) != 1 || list[0].ID != second.ID {
		t.Fatalf("archived visit must leave the public list, got %+v", list)
	}
	if _, err := env.visit.Get(ctx, first.ID); err != nil {
		t.Fatalf("archived visit should stay fetchable by id: %v", err)
	}

	if err := env.visit.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := env.visit.Get(ctx, second.ID); !errors.Is(err, apperrors.ErrCompanyVisitNotFound) {
		t.Fatalf("expected ErrCompanyVisitNotFound, got %v", err)
	}
}

func TestCompanyVisitMissingAndEmptyUpdates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	loc := "Delhi"
	if _, err := env.visit.Update(ctx, 99, &dto.UpdateCompanyVisitRequest{Location: &loc}); !errors.Is(err, apperrors.ErrCompanyVisitNotFound) {
		t.Fatalf("expected ErrCompanyVisitNotFound, got %v", err)
	}
	if _, err := env.visit.Update(ctx, 99, &dto.UpdateCompanyVisitRequest{}); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for empty update, got %v", err)
	}
	if err := env.visit.Delete(ctx, 99); !errors.Is(err, apperrors.ErrCompanyVisitNotFound) {
		t.Fatalf("expected ErrCompanyVisitNotFound, got %v", err)
	}
	if _, err := env.visit.Archive(ctx, 99); !errors.Is(err, apperrors.ErrCompanyVisitNotFound) {
		t.Fatalf("expected ErrCompanyVisitNotFound, got %v", err)
	}
}
