package visit

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("builder visit not found")
	ErrInvalidTransition = errors.New("invalid approval transition")
	ErrUnknownStatus     = errors.New("unknown approval status")
)

// The visit form uses plain labels, unlike the application form's
// "... by SB" variant.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus maps a stored label to a Status. Empty means Pending; unknown
// labels are an error rather than an implicit "not approved".
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

// BuilderVisit records one site visit to a builder project. Visits are
// append-only: no edit affordance, only approve/reject.
type BuilderVisit struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	VisitID string `gorm:"size:32;uniqueIndex:ux_builder_visits_visit_id" json:"id"`

	BuilderName            string `gorm:"size:128" json:"builderName"`
	GroupName              string `gorm:"size:128" json:"groupName"`
	ProjectName            string `gorm:"size:128" json:"projectName"`
	Location               string `gorm:"size:128" json:"location"`
	DateOfVisit            string `gorm:"size:10;index:idx_builder_visits_date" json:"dateOfVisit"`
	PersonMet              string `gorm:"size:128" json:"personMet"`
	OfficePersonDetails    string `gorm:"size:255" json:"officePersonDetails"`
	DevelopmentType        string `gorm:"size:32" json:"developmentType"`
	TotalUnitsBlocks       string `gorm:"size:64" json:"totalUnitsBlocks"`
	CurrentPhase           string `gorm:"size:64" json:"currentPhase"`
	PropertySize           string `gorm:"size:16" json:"propertySize"`
	ExpectedCompletionDate string `gorm:"size:10" json:"expectedCompletionDate"`
	FinancingRequirements  string `gorm:"size:8" json:"financingRequirements"`
	FinancingDetails       string `gorm:"size:255" json:"financingDetails"`
	ResidentType           string `gorm:"size:64" json:"residentType"`
	AvgAgreementValue      string `gorm:"size:32" json:"avgAgreementValue"`
	MarketValue            string `gorm:"size:32" json:"marketValue"`
	NearbyProjects         string `gorm:"type:text" json:"nearbyProjects"`
	SurroundingCommunity   string `gorm:"size:255" json:"surroundingCommunity"`
	EnquiryType            string `gorm:"size:32" json:"enquiryType"`
	UnitsForSale           string `gorm:"size:16" json:"unitsForSale"`
	TimeLimitMonths        string `gorm:"size:16" json:"timeLimitMonths"`
	Remark                 string `gorm:"type:text" json:"remark"`

	ApprovalStatus Status `gorm:"size:16;column:approval_status" json:"approvalStatus"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BuilderVisit) TableName() string { return "builder_visits" }
