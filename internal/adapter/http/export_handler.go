package http

import (
	"fmt"
	"net/http"

	"loandesk-backend/internal/usecase/export"

	"github.com/labstack/echo/v4"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct{ uc *export.Usecase }

func NewExportHandler(uc *export.Usecase) *ExportHandler { return &ExportHandler{uc: uc} }

// ExportExcel serves GET /api/export/excel?password=...&ref=<sales>.
// The ref param name is what the form client sends for the sales filter.
func (h *ExportHandler) ExportExcel(c echo.Context) error {
	password := c.QueryParam("password")
	if password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing password"})
	}
	sales := c.QueryParam("ref")

	data, name, err := h.uc.Excel(c.Request().Context(), password, sales)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK, xlsxMIME, data)
}
