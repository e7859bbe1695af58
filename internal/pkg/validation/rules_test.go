package validation

import "testing"

func TestNormalizeAndValidateEmail(t *testing.T) {
	email := NormalizeEmail("  Asha.Verma@College.EDU ")
	if email != "asha.verma@college.edu" {
		t.Fatalf("unexpected normalized email %q", email)
	}
	if !IsValidEmail(email) {
		t.Fatalf("expected %q to be valid", email)
	}
	for _, bad := range []string{"", "asha", "asha@", "@college.edu", "asha@college"} {
		if IsValidEmail(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestNormalizeAndValidateRollNumber(t *testing.T) {
	roll := NormalizeRollNumber(" 21cs-042 ")
	if roll != "21CS-042" {
		t.Fatalf("unexpected normalized roll number %q", roll)
	}
	if !IsValidRollNumber(roll) {
		t.Fatalf("expected %q to be valid", roll)
	}
	for _, bad := range []string{"", "-21CS", "21 CS", "21CS#1"} {
		if IsValidRollNumber(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestStringValidationLengths(t *testing.T) {
	if NewStringValidation("ab").WithMinLength(3).Validate() {
		t.Fatalf("expected min length failure")
	}
	if NewStringValidation("abcd").WithMaxLength(3).Validate() {
		t.Fatalf("expected max length failure")
	}
	if !NewStringValidation("").WithRequired(false).Validate() {
		t.Fatalf("optional empty value should pass")
	}
	if NewStringValidation("").Validate() {
		t.Fatalf("required empty value should fail")
	}
}
