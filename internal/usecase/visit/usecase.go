package visit

import (
	"context"
	"errors"
	"strings"

	"loandesk-backend/internal/domain/uow"
	domain "loandesk-backend/internal/domain/visit"
	"loandesk-backend/internal/secrets"
	"loandesk-backend/pkg/id"
)

// Usecase owns the builder-visit log. Visits share the application form's
// approval password but use the plain Pending/Approved/Rejected labels and
// have no edit affordance.
type Usecase struct {
	repo    domain.Repository
	uow     uow.UnitOfWork
	secrets *secrets.Store
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, sec *secrets.Store) *Usecase {
	return &Usecase{repo: r, uow: tx, secrets: sec}
}

func (u *Usecase) Create(ctx context.Context, in VisitInput) (*VisitDTO, error) {
	if strings.TrimSpace(in.BuilderName) == "" {
		return nil, errors.New("builderName is required")
	}

	v := &domain.BuilderVisit{
		VisitID:                id.NewID32(),
		BuilderName:            in.BuilderName,
		GroupName:              in.GroupName,
		ProjectName:            in.ProjectName,
		Location:               in.Location,
		DateOfVisit:            in.DateOfVisit,
		PersonMet:              in.PersonMet,
		OfficePersonDetails:    in.OfficePersonDetails,
		DevelopmentType:        in.DevelopmentType,
		TotalUnitsBlocks:       in.TotalUnitsBlocks,
		CurrentPhase:           in.CurrentPhase,
		PropertySize:           in.PropertySize,
		ExpectedCompletionDate: in.ExpectedCompletionDate,
		FinancingRequirements:  in.FinancingRequirements,
		FinancingDetails:       in.FinancingDetails,
		ResidentType:           in.ResidentType,
		AvgAgreementValue:      in.AvgAgreementValue,
		MarketValue:            in.MarketValue,
		NearbyProjects:         in.NearbyProjects,
		SurroundingCommunity:   in.SurroundingCommunity,
		EnquiryType:            in.EnquiryType,
		UnitsForSale:           in.UnitsForSale,
		TimeLimitMonths:        in.TimeLimitMonths,
		Remark:                 in.Remark,
		ApprovalStatus:         domain.StatusPending,
	}

	if err := u.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return toDTO(v), nil
}

func (u *Usecase) List(ctx context.Context) ([]VisitDTO, error) {
	visits, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]VisitDTO, 0, len(visits))
	for i := range visits {
		out = append(out, *toDTO(&visits[i]))
	}
	return out, nil
}

func (u *Usecase) Approve(ctx context.Context, visitID, password string) (*VisitDTO, error) {
	if err := u.secrets.VerifyApproval(password); err != nil {
		return nil, err
	}

	var dto *VisitDTO
	err := u.uow.WithinVisitTx(ctx, visitID, func(r uow.Repos, v *domain.BuilderVisit) error {
		st, err := domain.ParseStatus(string(v.ApprovalStatus))
		if err != nil {
			return err
		}
		switch st {
		case domain.StatusApproved:
			dto = toDTO(v) // idempotent
			return nil
		case domain.StatusRejected:
			return domain.ErrInvalidTransition
		}
		v.ApprovalStatus = domain.StatusApproved
		if err := r.Visits.Save(ctx, v); err != nil {
			return err
		}
		dto = toDTO(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Reject(ctx context.Context, visitID, password string) (*VisitDTO, error) {
	if err := u.secrets.VerifyApproval(password); err != nil {
		return nil, err
	}

	var dto *VisitDTO
	err := u.uow.WithinVisitTx(ctx, visitID, func(r uow.Repos, v *domain.BuilderVisit) error {
		st, err := domain.ParseStatus(string(v.ApprovalStatus))
		if err != nil {
			return err
		}
		switch st {
		case domain.StatusRejected:
			dto = toDTO(v) // idempotent
			return nil
		case domain.StatusApproved:
			return domain.ErrInvalidTransition
		}
		v.ApprovalStatus = domain.StatusRejected
		if err := r.Visits.Save(ctx, v); err != nil {
			return err
		}
		dto = toDTO(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
