package application

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrUnauthorized      = errors.New("wrong password")
	ErrNotConfigured     = errors.New("no password configured")
	ErrEditLocked        = errors.New("rejected application is locked for edit")
	ErrInvalidTransition = errors.New("invalid approval transition")
	ErrUnknownStatus     = errors.New("unknown approval status")
)

// Status is the approval state of an application. The empty string on the
// wire is treated as Pending; anything else must match one of the labels
// below exactly.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved by SB"
	StatusRejected Status = "Rejected by SB"
)

// ParseStatus maps a stored/wire label to a Status. Unknown labels are an
// error rather than an implicit "not approved".
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "", StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Application is a single loan-intake submission. Dates are kept as the
// calendar strings the form sends (YYYY-MM-DD); filtering works on days,
// never on time-of-day.
type Application struct {
	ID    uint64 `gorm:"primaryKey;column:id" json:"-"`
	AppID string `gorm:"size:32;uniqueIndex:ux_applications_app_id" json:"id"`

	Code          string `gorm:"size:64" json:"code"`
	Name          string `gorm:"size:128" json:"name"`
	Mobile        string `gorm:"size:10" json:"mobile"`
	Email         string `gorm:"size:128" json:"email"`
	Product       string `gorm:"size:64" json:"product"`
	Amount        string `gorm:"size:32" json:"amount"`
	Bank          string `gorm:"size:64" json:"bank"`
	BankerName    string `gorm:"size:128" json:"bankerName"`
	Status        string `gorm:"size:32" json:"status"`
	LoginDate     string `gorm:"size:10;index:idx_applications_login_date" json:"loginDate"`
	DisbursedDate string `gorm:"size:10" json:"disbursedDate"`
	Sales         string `gorm:"size:64;index:idx_applications_sales" json:"sales"`
	Ref           string `gorm:"size:128" json:"ref"`
	SourceChannel string `gorm:"size:64" json:"sourceChannel"`
	Remark        string `gorm:"type:text" json:"remark"`

	Payout           string `gorm:"size:32" json:"payout"`
	ExpenceAmount    string `gorm:"size:32" json:"expenceAmount"`
	FeesRefundAmount string `gorm:"size:32" json:"feesRefundAmount"`
	PropertyType     string `gorm:"size:64" json:"propertyType"`
	PropertyDetails  string `gorm:"type:text" json:"propertyDetails"`
	MktValue         string `gorm:"size:32" json:"mktValue"`
	ROI              string `gorm:"size:32" json:"roi"`
	ProcessingFees   string `gorm:"size:32" json:"processingFees"`
	Category         string `gorm:"size:64" json:"category"`
	AuditData        string `gorm:"size:16" json:"auditData"`
	Consulting       string `gorm:"size:128" json:"consulting"`

	ApprovalStatus Status `gorm:"size:32;column:approval_status" json:"approvalStatus"`
	ImportantMsg   string `gorm:"type:text;column:important_msg" json:"importantMsg"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "applications" }
