package http

import (
	"context"
	"net/http"

	"loandesk-backend/internal/usecase/visit"

	"github.com/labstack/echo/v4"
)

type VisitHandler struct{ uc *visit.Usecase }

func NewVisitHandler(uc *visit.Usecase) *VisitHandler { return &VisitHandler{uc: uc} }

// visitReq mirrors visit.VisitInput; only the tags differ.
type visitReq struct {
	BuilderName            string `json:"builderName"            validate:"required"`
	GroupName              string `json:"groupName"`
	ProjectName            string `json:"projectName"`
	Location               string `json:"location"`
	DateOfVisit            string `json:"dateOfVisit"            validate:"omitempty,dateymd"`
	PersonMet              string `json:"personMet"`
	OfficePersonDetails    string `json:"officePersonDetails"`
	DevelopmentType        string `json:"developmentType"`
	TotalUnitsBlocks       string `json:"totalUnitsBlocks"`
	CurrentPhase           string `json:"currentPhase"`
	PropertySize           string `json:"propertySize"`
	ExpectedCompletionDate string `json:"expectedCompletionDate" validate:"omitempty,dateymd"`
	FinancingRequirements  string `json:"financingRequirements"`
	FinancingDetails       string `json:"financingDetails"`
	ResidentType           string `json:"residentType"`
	AvgAgreementValue      string `json:"avgAgreementValue"`
	MarketValue            string `json:"marketValue"`
	NearbyProjects         string `json:"nearbyProjects"`
	SurroundingCommunity   string `json:"surroundingCommunity"`
	EnquiryType            string `json:"enquiryType"`
	UnitsForSale           string `json:"unitsForSale"`
	TimeLimitMonths        string `json:"timeLimitMonths"`
	Remark                 string `json:"remark"`
}

func (h *VisitHandler) ListVisits(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *VisitHandler) CreateVisit(c echo.Context) error {
	var req visitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), visit.VisitInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *VisitHandler) ApproveVisit(c echo.Context) error {
	return h.decide(c, h.uc.Approve)
}

func (h *VisitHandler) RejectVisit(c echo.Context) error {
	return h.decide(c, h.uc.Reject)
}

func (h *VisitHandler) decide(c echo.Context, transition func(ctx context.Context, visitID, password string) (*visit.VisitDTO, error)) error {
	visitID := c.Param("id")
	if visitID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing id path param"})
	}
	var req passwordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := transition(c.Request().Context(), visitID, req.Password)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
