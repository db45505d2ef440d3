package application

import (
	"time"

	domain "loandesk-backend/internal/domain/application"
)

// FormInput is the raw submission from the intake form. The Other* pairs
// carry the free-text value when the matching select is "Other"; normalize()
// collapses each pair into one canonical value before anything is stored.
type FormInput struct {
	Code               string `json:"code"`
	OtherCode          string `json:"otherCode"`
	Name               string `json:"name"`
	Mobile             string `json:"mobile"`
	Email              string `json:"email"`
	Product            string `json:"product"`
	OtherProduct       string `json:"otherProduct"`
	Amount             string `json:"amount"`
	Bank               string `json:"bank"`
	OtherBank          string `json:"otherBank"`
	BankerName         string `json:"bankerName"`
	Status             string `json:"status"`
	LoginDate          string `json:"loginDate"`
	DisbursedDate      string `json:"disbursedDate"`
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

type ApplicationDTO struct {
	AppID          string    `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	MobileMasked   string    `json:"mobileMasked"`
	Email          string    `json:"email"`
	Product        string    `json:"product"`
	Amount         string    `json:"amount"`
	Bank           string    `json:"bank"`
	BankerName     string    `json:"bankerName"`
	Status         string    `json:"status"`
	LoginDate      string    `json:"loginDate"`
	DisbursedDate  string    `json:"disbursedDate"`
	Sales          string    `json:"sales"`
	Ref            string    `json:"ref"`
	SourceChannel  string    `json:"sourceChannel"`
	Remark         string    `json:"remark"`
	Payout         string    `json:"payout"`
	ExpenceAmount  string    `json:"expenceAmount"`
	FeesRefund     string    `json:"feesRefundAmount"`
	PropertyType   string    `json:"propertyType"`
	PropertyDetail string    `json:"propertyDetails"`
	MktValue       string    `json:"mktValue"`
	ROI            string    `json:"roi"`
	ProcessingFees string    `json:"processingFees"`
	Category       string    `json:"category"`
	AuditData      string    `json:"auditData"`
	Consulting     string    `json:"consulting"`
	ApprovalStatus string    `json:"approvalStatus"`
	ImportantMsg   string    `json:"importantMsg"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toDTO(a *domain.Application) *ApplicationDTO {
	return &ApplicationDTO{
		AppID:          a.AppID,
		Code:           a.Code,
		Name:           a.Name,
		Mobile:         a.Mobile,
		MobileMasked:   MaskMobile(a.Mobile),
		Email:          a.Email,
		Product:        a.Product,
		Amount:         a.Amount,
		Bank:           a.Bank,
		BankerName:     a.BankerName,
		Status:         a.Status,
		LoginDate:      a.LoginDate,
		DisbursedDate:  a.DisbursedDate,
		Sales:          a.Sales,
		Ref:            a.Ref,
		SourceChannel:  a.SourceChannel,
		Remark:         a.Remark,
		Payout:         a.Payout,
		ExpenceAmount:  a.ExpenceAmount,
		FeesRefund:     a.FeesRefundAmount,
		PropertyType:   a.PropertyType,
		PropertyDetail: a.PropertyDetails,
		MktValue:       a.MktValue,
		ROI:            a.ROI,
		ProcessingFees: a.ProcessingFees,
		Category:       a.Category,
		AuditData:      a.AuditData,
		Consulting:     a.Consulting,
		ApprovalStatus: string(a.ApprovalStatus),
		ImportantMsg:   a.ImportantMsg,
		CreatedAt:      a.CreatedAt,
	}
}

// MaskMobile hides everything but the last four digits for list views.
func MaskMobile(mobile string) string {
	if mobile == "" {
		return ""
	}
	if len(mobile) < 4 {
		return mobile
	}
	return "XXXXXX" + mobile[len(mobile)-4:]
}
