package secrets

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"loandesk-backend/internal/domain/application"
)

func TestVerifyApproval(t *testing.T) {
	s := NewStore("s3cret", "", nil)

	if err := s.VerifyApproval("s3cret"); err != nil {
		t.Fatalf("correct password: %v", err)
	}
	if err := s.VerifyApproval("wrong"); !errors.Is(err, application.ErrUnauthorized) {
		t.Fatalf("wrong password: got %v, want ErrUnauthorized", err)
	}
	if err := s.VerifyApproval(""); !errors.Is(err, application.ErrUnauthorized) {
		t.Fatalf("empty password: got %v, want ErrUnauthorized", err)
	}

	empty := NewStore("", "", nil)
	if err := empty.VerifyApproval("anything"); !errors.Is(err, application.ErrNotConfigured) {
		t.Fatalf("no secret set: got %v, want ErrNotConfigured", err)
	}
}

func TestVerifyExport_MasterVsPerSales(t *testing.T) {
	s := NewStore("", "master", map[string]string{
		"Vinay Mishra":   "vinay-pw",
		"Robins Kapadia": "robins-pw",
	})

	if err := s.VerifyExport("", "master"); err != nil {
		t.Fatalf("master export: %v", err)
	}
	if err := s.VerifyExport("Vinay Mishra", "vinay-pw"); err != nil {
		t.Fatalf("per-sales export: %v", err)
	}

	// Secrets are independent of each other and of the master secret.
	if err := s.VerifyExport("Robins Kapadia", "vinay-pw"); !errors.Is(err, application.ErrUnauthorized) {
		t.Fatalf("cross-owner password: got %v, want ErrUnauthorized", err)
	}
	if err := s.VerifyExport("", "vinay-pw"); !errors.Is(err, application.ErrUnauthorized) {
		t.Fatalf("per-sales password on master export: got %v, want ErrUnauthorized", err)
	}
	if err := s.VerifyExport("Parag Shah", "anything"); !errors.Is(err, application.ErrNotConfigured) {
		t.Fatalf("unknown sales: got %v, want ErrNotConfigured", err)
	}
}

func TestMatch_BcryptHashes(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	s := NewStore(string(hash), "", map[string]string{"Vinay Mishra": string(hash)})

	if err := s.VerifyApproval("hunter2"); err != nil {
		t.Fatalf("bcrypt approval secret: %v", err)
	}
	if err := s.VerifySales("Vinay Mishra", "hunter2"); err != nil {
		t.Fatalf("bcrypt sales secret: %v", err)
	}
	if err := s.VerifySales("Vinay Mishra", "hunter3"); !errors.Is(err, application.ErrUnauthorized) {
		t.Fatalf("bcrypt mismatch: got %v, want ErrUnauthorized", err)
	}
}
