package models

import "testing"

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		actual   Role
		required Role
		want     bool
	}{
		{RoleStudent, RoleStudent, true},
		{RoleStudent, RoleAdmin, false},
		{RoleStudent, RoleSuperAdmin, false},
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleStudent, false},
		{RoleAdmin, RoleSuperAdmin, false},
		{RoleSuperAdmin, RoleSuperAdmin, true},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleStudent, false},
		{Role("recruiter"), RoleStudent, false},
		{RoleAdmin, Role(""), false},
	}

	for _, tt := range tests {
		if got := tt.actual.Satisfies(tt.required); got != tt.want {
			t.Errorf("%q.Satisfies(%q) = %v, want %v", tt.actual, tt.required, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("admin"); err != nil || r != RoleAdmin {
		t.Fatalf("expected admin, got %q (%v)", r, err)
	}
	if _, err := ParseRole("ADMIN"); err == nil {
		t.Fatalf("expected error for upper-case role")
	}
}

func TestPlacementReviewIsPermissive(t *testing.T) {
	p := &Placement{Status: PlacementPending}

	if err := p.ApplyReview(PlacementApproved, 9); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if p.Status != PlacementApproved || p.VerifiedBy == nil || *p.VerifiedBy != 9 {
		t.Fatalf("expected approved by 9, got %s / %v", p.Status, p.VerifiedBy)
	}

	if err := p.ApplyReview(PlacementRejected, 10); err != nil {
		t.Fatalf("reject after approve: %v", err)
	}
	if p.Status != PlacementRejected {
		t.Fatalf("expected rejected, got %s", p.Status)
	}

	if err := p.ApplyReview(PlacementApproved, 11); err != nil {
		t.Fatalf("approve after reject: %v", err)
	}
	if err := p.ApplyReview(PlacementApproved, 11); err != nil {
		t.Fatalf("repeat approve: %v", err)
	}
	if p.Status != PlacementApproved || *p.VerifiedBy != 11 {
		t.Fatalf("expected approved by 11, got %s / %d", p.Status, *p.VerifiedBy)
	}
}

func TestPlacementReviewRejectsPendingTarget(t *testing.T) {
	p := &Placement{Status: PlacementApproved}
	if err := p.ApplyReview(PlacementPending, 1); err == nil {
		t.Fatalf("expected error when moving back to pending")
	}
	if p.Status != PlacementApproved {
		t.Fatalf("status should be unchanged, got %s", p.Status)
	}

	bad := &Placement{Status: PlacementStatus("archived")}
	if err := bad.ApplyReview(PlacementApproved, 1); err == nil {
		t.Fatalf("expected error for unknown current status")
	}
}
