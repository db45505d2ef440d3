// Package secrets holds the shared action passwords: the approval secret,
// the master export secret, and one secret per sales person for export and
// edit verification. Values may be stored as bcrypt hashes; plaintext values
// are compared in constant time.
package secrets

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"loandesk-backend/internal/domain/application"
)

type Store struct {
	approval string
	master   string
	perSales map[string]string
}

func NewStore(approval, master string, perSales map[string]string) *Store {
	m := make(map[string]string, len(perSales))
	for k, v := range perSales {
		m[strings.TrimSpace(k)] = v
	}
	return &Store{approval: approval, master: master, perSales: m}
}

func match(stored, candidate string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// VerifyApproval gates approve/reject actions.
func (s *Store) VerifyApproval(password string) error {
	if s.approval == "" {
		return application.ErrNotConfigured
	}
	if !match(s.approval, password) {
		return application.ErrUnauthorized
	}
	return nil
}

// VerifyExport authorizes a spreadsheet export. An empty sales name means
// the unfiltered master export; a sales name selects that owner's secret.
// Per-sales secrets are independent: owner A's password never unlocks owner
// B's export or the master export.
func (s *Store) VerifyExport(sales, password string) error {
	if sales == "" {
		if s.master == "" {
			return application.ErrNotConfigured
		}
		if !match(s.master, password) {
			return application.ErrUnauthorized
		}
		return nil
	}
	return s.VerifySales(sales, password)
}

// VerifySales checks a per-sales secret, used by both the filtered export
// and the verify-edit gate.
func (s *Store) VerifySales(sales, password string) error {
	stored, ok := s.perSales[strings.TrimSpace(sales)]
	if !ok || stored == "" {
		return application.ErrNotConfigured
	}
	if !match(stored, password) {
		return application.ErrUnauthorized
	}
	return nil
}
