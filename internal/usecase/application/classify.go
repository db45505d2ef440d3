package application

import (
	"fmt"
	"strings"

	domain "loandesk-backend/internal/domain/application"
)

// fieldValue looks up a form field on the stored record by its wire name.
// The second return is false for names the classifier does not know.
func fieldValue(a *domain.Application, name string) (string, bool) {
	switch name {
	case "code":
		return a.Code, true
	case "name":
		return a.Name, true
	case "mobile":
		return a.Mobile, true
	case "email":
		return a.Email, true
	case "product":
		return a.Product, true
	case "amount":
		return a.Amount, true
	case "bank":
		return a.Bank, true
	case "bankerName":
		return a.BankerName, true
	case "status":
		return a.Status, true
	case "loginDate":
		return a.LoginDate, true
	case "disbursedDate":
		return a.DisbursedDate, true
	case "sales":
		return a.Sales, true
	case "ref":
		return a.Ref, true
	case "sourceChannel":
		return a.SourceChannel, true
	case "remark":
		return a.Remark, true
	case "payout":
		return a.Payout, true
	case "expenceAmount":
		return a.ExpenceAmount, true
	case "feesRefundAmount":
		return a.FeesRefundAmount, true
	case "propertyType":
		return a.PropertyType, true
	case "propertyDetails":
		return a.PropertyDetails, true
	case "mktValue":
		return a.MktValue, true
	case "roi":
		return a.ROI, true
	case "processingFees":
		return a.ProcessingFees, true
	case "category":
		return a.Category, true
	case "auditData":
		return a.AuditData, true
	case "consulting":
		return a.Consulting, true
	}
	return "", false
}

func inputFieldValue(in FormInput, name string) (string, bool) {
	// The incoming edit is compared post-normalization, so viewing it
	// through a throwaway record keeps both sides on the same field map.
	tmp := &domain.Application{}
	applyInput(tmp, in)
	return fieldValue(tmp, name)
}

// classifyChange compares a normalized incoming edit against the stored
// record over the configured important fields. Comparison is by trimmed
// string equality; the returned names keep the configured order.
func classifyChange(prev *domain.Application, next FormInput, important []string) (bool, []string) {
	var changed []string
	for _, name := range important {
		oldVal, ok := fieldValue(prev, name)
		if !ok {
			continue
		}
		newVal, _ := inputFieldValue(next, name)
		if strings.TrimSpace(oldVal) != strings.TrimSpace(newVal) {
			changed = append(changed, name)
		}
	}
	return len(changed) > 0, changed
}

// importantChangeMsg renders the annotation stored on the record when an
// important edit forces re-approval.
func importantChangeMsg(fields []string) string {
	return fmt.Sprintf("Important field changed (%s), re-approval required.", strings.Join(fields, ", "))
}

// applyInput copies the normalized form fields onto the record. Workflow
// fields (approvalStatus, importantMsg) are owned by the usecase and are
// never written here.
func applyInput(a *domain.Application, in FormInput) {
	a.Code = in.Code
	a.Name = in.Name
	a.Mobile = in.Mobile
	a.Email = in.Email
	a.Product = in.Product
	a.Amount = in.Amount
	a.Bank = in.Bank
	a.BankerName = in.BankerName
	a.Status = in.Status
	a.LoginDate = in.LoginDate
	a.DisbursedDate = in.DisbursedDate
	a.Sales = in.Sales
	a.Ref = in.Ref
	a.SourceChannel = in.SourceChannel
	a.Remark = in.Remark
	a.Payout = in.Payout
	a.ExpenceAmount = in.ExpenceAmount
	a.FeesRefundAmount = in.FeesRefundAmount
	a.PropertyType = in.PropertyType
	a.PropertyDetails = in.PropertyDetails
	a.MktValue = in.MktValue
	a.ROI = in.ROI
	a.ProcessingFees = in.ProcessingFees
	a.Category = in.Category
	a.AuditData = in.AuditData
	a.Consulting = in.Consulting
}
