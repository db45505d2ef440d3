package http

import (
	"errors"
	"strings"
	"testing"
)

func TestMobile10Validation(t *testing.T) {
	type P struct {
		Mobile string `validate:"mobile10"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Mobile: "9876543210"}); err != nil {
		t.Fatalf("expected valid mobile10, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",            // empty
		"98765",       // too short
		"98765432101", // too long
		"98765abcde",  // non-digits
		"+9198765432", // leading plus
	} {
		err := cv.Validate(P{Mobile: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Mobile", "10 digits") {
			t.Fatalf("expected mobile10 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDateYMDValidation(t *testing.T) {
	type P struct {
		LoginDate string `validate:"dateymd"`
	}
	cv := NewValidator()

	for _, s := range []string{"2024-02-15", "2024-02-29", "1999-12-31"} {
		if err := cv.Validate(P{LoginDate: s}); err != nil {
			t.Fatalf("expected dateymd OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{
		"",           // empty
		"15/02/2024", // wrong separator and order
		"2024-2-15",  // unpadded month
		"2024-13-01", // no such month
		"2023-02-29", // not a leap year
		"yesterday",
	} {
		err := cv.Validate(P{LoginDate: s})
		if err == nil {
			t.Fatalf("expected dateymd error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LoginDate", "YYYY-MM-DD") {
			t.Fatalf("expected dateymd message for %q, got %+v", s, fe)
		}
	}
}

func TestRequiredAndEmailMapping(t *testing.T) {
	type P struct {
		Name  string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Email: "not-an-email"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Email", "valid email") {
		t.Fatalf("missing email message: %+v", fe)
	}

	// omitempty skips the check entirely when the field is blank
	if err := cv.Validate(P{Name: "Asha", Email: ""}); err != nil {
		t.Fatalf("expected empty email to pass, got %v", err)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}

func TestUnmappedTagFallsBack(t *testing.T) {
	type P struct {
		Count int `validate:"gte=10"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Count: 3})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	fe := ToFieldErrors(err)
	if len(fe) != 1 || fe[0].Field != "Count" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
	if !strings.Contains(fe[0].Message, "gte") {
		t.Fatalf("expected fallback message naming the tag, got %q", fe[0].Message)
	}
}
