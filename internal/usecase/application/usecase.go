package application

import (
	"context"
	"errors"
	"strings"

	domain "loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/uow"
	"loandesk-backend/internal/secrets"
	"loandesk-backend/pkg/id"
)

// Options are the per-deployment workflow knobs. ImportantFields is the
// ordered list of field names whose change resets a prior approval;
// LockRejectedEdits makes a rejected record read-only to its owner.
type Options struct {
	ImportantFields   []string
	LockRejectedEdits bool
}

type Usecase struct {
	repo    domain.Repository
	uow     uow.UnitOfWork
	secrets *secrets.Store
	opts    Options
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, sec *secrets.Store, opts Options) *Usecase {
	return &Usecase{repo: r, uow: tx, secrets: sec, opts: opts}
}

func (u *Usecase) Create(ctx context.Context, in FormInput) (*ApplicationDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}

	a := &domain.Application{
		AppID:          id.NewID32(),
		ApprovalStatus: domain.StatusPending,
	}
	applyInput(a, in.normalized())

	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// Update applies a normalized edit. Workflow fields sent by the client are
// ignored: whether the approval resets is decided here, from the change
// classifier, and nowhere else.
func (u *Usecase) Update(ctx context.Context, appID string, in FormInput) (*ApplicationDTO, error) {
	a, err := u.repo.GetByAppID(ctx, appID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	st, err := domain.ParseStatus(string(a.ApprovalStatus))
	if err != nil {
		return nil, err
	}
	if u.opts.LockRejectedEdits && st == domain.StatusRejected {
		return nil, domain.ErrEditLocked
	}

	norm := in.normalized()
	important, changed := classifyChange(a, norm, u.opts.ImportantFields)

	applyInput(a, norm)
	if important {
		a.ApprovalStatus = domain.StatusPending
		a.ImportantMsg = importantChangeMsg(changed)
	}

	if err := u.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, appID string) (*ApplicationDTO, error) {
	a, err := u.repo.GetByAppID(ctx, appID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toDTO(a), nil
}

// List returns the filtered applications, newest first.
func (u *Usecase) List(ctx context.Context, f Filter) ([]ApplicationDTO, error) {
	apps, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	apps = f.apply(apps)
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

// Approve moves a pending application to Approved by SB. The password is
// checked before any store call; a wrong password leaves the record
// untouched. Approving an already-approved record is a no-op. A record whose
// stored status does not parse is never transitioned.
func (u *Usecase) Approve(ctx context.Context, appID, password string) (*ApplicationDTO, error) {
	if err := u.secrets.VerifyApproval(password); err != nil {
		return nil, err
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *domain.Application) error {
		st, err := domain.ParseStatus(string(a.ApprovalStatus))
		if err != nil {
			return err
		}
		switch st {
		case domain.StatusApproved:
			dto = toDTO(a) // idempotent
			return nil
		case domain.StatusRejected:
			return domain.ErrInvalidTransition
		}
		a.ApprovalStatus = domain.StatusApproved
		a.ImportantMsg = ""
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject mirrors Approve into the terminal Rejected by SB state.
func (u *Usecase) Reject(ctx context.Context, appID, password string) (*ApplicationDTO, error) {
	if err := u.secrets.VerifyApproval(password); err != nil {
		return nil, err
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *domain.Application) error {
		st, err := domain.ParseStatus(string(a.ApprovalStatus))
		if err != nil {
			return err
		}
		switch st {
		case domain.StatusRejected:
			dto = toDTO(a) // idempotent
			return nil
		case domain.StatusApproved:
			return domain.ErrInvalidTransition
		}
		a.ApprovalStatus = domain.StatusRejected
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// VerifyEdit gates the edit form behind the sales person's own secret,
// independent of the approval password.
func (u *Usecase) VerifyEdit(sales, password string) error {
	return u.secrets.VerifySales(sales, password)
}
