package http

import (
	"context"
	"net/http"

	"loandesk-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// applicationReq mirrors application.FormInput so the two convert directly;
// only the tags differ.
type applicationReq struct {
	Code               string `json:"code"`
	OtherCode          string `json:"otherCode"`
	Name               string `json:"name"                 validate:"required"`
	Mobile             string `json:"mobile"               validate:"omitempty,mobile10"`
	Email              string `json:"email"                validate:"omitempty,email"`
	Product            string `json:"product"`
	OtherProduct       string `json:"otherProduct"`
	Amount             string `json:"amount"`
	Bank               string `json:"bank"`
	OtherBank          string `json:"otherBank"`
	BankerName         string `json:"bankerName"`
	Status             string `json:"status"`
	LoginDate          string `json:"loginDate"            validate:"omitempty,dateymd"`
	DisbursedDate      string `json:"disbursedDate"        validate:"omitempty,dateymd"`
	Sales              string `json:"sales"`
	Ref                string `json:"ref"`
	SourceChannel      string `json:"sourceChannel"`
	OtherSourceChannel string `json:"otherSourceChannel"`
	Remark             string `json:"remark"`
	Payout             string `json:"payout"`
	ExpenceAmount      string `json:"expenceAmount"`
	FeesRefundAmount   string `json:"feesRefundAmount"`
	PropertyType       string `json:"propertyType"`
	OtherPropertyType  string `json:"otherPropertyType"`
	PropertyDetails    string `json:"propertyDetails"`
	MktValue           string `json:"mktValue"`
	ROI                string `json:"roi"`
	ProcessingFees     string `json:"processingFees"`
	Category           string `json:"category"`
	OtherCategory      string `json:"otherCategory"`
	AuditData          string `json:"auditData"`
	Consulting         string `json:"consulting"`
}

type passwordReq struct {
	Password string `json:"password" validate:"required"`
}

type verifyEditReq struct {
	Sales    string `json:"sales"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	f := application.Filter{
		FromDate: c.QueryParam("fromDate"),
		ToDate:   c.QueryParam("toDate"),
		Sales:    c.QueryParam("sales"),
		Status:   c.QueryParam("status"),
	}
	dtos, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

// GetApplication serves the edit form prefill.
func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	appID := c.Param("id")
	if appID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), appID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	var req applicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), application.FormInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) UpdateApplication(c echo.Context) error {
	appID := c.Param("id")
	if appID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing id path param"})
	}
	var req applicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), appID, application.FormInput(req))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) ApproveApplication(c echo.Context) error {
	return h.decide(c, h.uc.Approve)
}

func (h *ApplicationHandler) RejectApplication(c echo.Context) error {
	return h.decide(c, h.uc.Reject)
}

// decide is the shared shape of approve and reject: bind the password,
// run the transition, map the outcome.
func (h *ApplicationHandler) decide(c echo.Context, transition func(ctx context.Context, appID, password string) (*application.ApplicationDTO, error)) error {
	appID := c.Param("id")
	if appID == "" {
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
	dto, err := transition(c.Request().Context(), appID, req.Password)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) VerifyEdit(c echo.Context) error {
	var req verifyEditReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.VerifyEdit(req.Sales, req.Password); err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
