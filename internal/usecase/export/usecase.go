package export

import (
	"context"
	"fmt"

	domain "loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/secrets"
)

// Usecase selects and serializes the spreadsheet download. Authorization
// happens before any store read: the master secret unlocks the unfiltered
// export, a per-sales secret unlocks only that owner's rows.
type Usecase struct {
	repo    domain.Repository
	secrets *secrets.Store
}

func NewUsecase(r domain.Repository, sec *secrets.Store) *Usecase {
	return &Usecase{repo: r, secrets: sec}
}

// Excel returns the xlsx bytes and a download filename.
func (u *Usecase) Excel(ctx context.Context, password, sales string) ([]byte, string, error) {
	if err := u.secrets.VerifyExport(sales, password); err != nil {
		return nil, "", err
	}

	var (
		apps []domain.Application
		err  error
	)
	if sales == "" {
		apps, err = u.repo.List(ctx)
	} else {
		apps, err = u.repo.ListBySales(ctx, sales)
	}
	if err != nil {
		return nil, "", err
	}

	data, err := buildWorkbook(apps)
	if err != nil {
		return nil, "", err
	}

	name := "applications_All.xlsx"
	if sales != "" {
		name = fmt.Sprintf("applications_%s.xlsx", sales)
	}
	return data, name, nil
}
