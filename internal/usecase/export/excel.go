package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	domain "loandesk-backend/internal/domain/application"
)

const sheetName = "Applications"

var headerRow = []interface{}{
	"Code", "Name", "Mobile", "Email", "Product", "Amount", "Bank",
	"Banker Name", "Status", "Login Date", "Disbursed Date", "Sales", "Ref",
	"Source Channel", "Remark", "Payout", "Expence Amount",
	"Fees Refund Amount", "Property Type", "Property Details", "Mkt Value",
	"ROI", "Processing Fees", "Category", "Audit Data", "Consulting",
	"Approval Status",
}

func recordRow(a *domain.Application) []interface{} {
	return []interface{}{
		a.Code, a.Name, a.Mobile, a.Email, a.Product, a.Amount, a.Bank,
		a.BankerName, a.Status, a.LoginDate, a.DisbursedDate, a.Sales, a.Ref,
		a.SourceChannel, a.Remark, a.Payout, a.ExpenceAmount,
		a.FeesRefundAmount, a.PropertyType, a.PropertyDetails, a.MktValue,
		a.ROI, a.ProcessingFees, a.Category, a.AuditData, a.Consulting,
		string(a.ApprovalStatus),
	}
}

// buildWorkbook writes one header row plus one row per application.
func buildWorkbook(apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, err
	}
	for i := range apps {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := recordRow(&apps[i])
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
