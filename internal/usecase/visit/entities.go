package visit

import (
	"time"

	domain "loandesk-backend/internal/domain/visit"
)

type VisitInput struct {
	BuilderName            string `json:"builderName"`
	GroupName              string `json:"groupName"`
	ProjectName            string `json:"projectName"`
	Location               string `json:"location"`
	DateOfVisit            string `json:"dateOfVisit"`
	PersonMet              string `json:"personMet"`
	OfficePersonDetails    string `json:"officePersonDetails"`
	DevelopmentType        string `json:"developmentType"`
	TotalUnitsBlocks       string `json:"totalUnitsBlocks"`
	CurrentPhase           string `json:"currentPhase"`
	PropertySize           string `json:"propertySize"`
	ExpectedCompletionDate string `json:"expectedCompletionDate"`
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

type VisitDTO struct {
	VisitID                string    `json:"id"`
	BuilderName            string    `json:"builderName"`
	GroupName              string    `json:"groupName"`
	ProjectName            string    `json:"projectName"`
	Location               string    `json:"location"`
	DateOfVisit            string    `json:"dateOfVisit"`
	PersonMet              string    `json:"personMet"`
	OfficePersonDetails    string    `json:"officePersonDetails"`
	DevelopmentType        string    `json:"developmentType"`
	TotalUnitsBlocks       string    `json:"totalUnitsBlocks"`
	CurrentPhase           string    `json:"currentPhase"`
	PropertySize           string    `json:"propertySize"`
	ExpectedCompletionDate string    `json:"expectedCompletionDate"`
	FinancingRequirements  string    `json:"financingRequirements"`
	FinancingDetails       string    `json:"financingDetails"`
	ResidentType           string    `json:"residentType"`
	AvgAgreementValue      string    `json:"avgAgreementValue"`
	MarketValue            string    `json:"marketValue"`
	NearbyProjects         string    `json:"nearbyProjects"`
	SurroundingCommunity   string    `json:"surroundingCommunity"`
	EnquiryType            string    `json:"enquiryType"`
	UnitsForSale           string    `json:"unitsForSale"`
	TimeLimitMonths        string    `json:"timeLimitMonths"`
	Remark                 string    `json:"remark"`
	ApprovalStatus         string    `json:"approvalStatus"`
	CreatedAt              time.Time `json:"createdAt"`
}

func toDTO(v *domain.BuilderVisit) *VisitDTO {
	return &VisitDTO{
		VisitID:                v.VisitID,
		BuilderName:            v.BuilderName,
		GroupName:              v.GroupName,
		ProjectName:            v.ProjectName,
		Location:               v.Location,
		DateOfVisit:            v.DateOfVisit,
		PersonMet:              v.PersonMet,
		OfficePersonDetails:    v.OfficePersonDetails,
		DevelopmentType:        v.DevelopmentType,
		TotalUnitsBlocks:       v.TotalUnitsBlocks,
		CurrentPhase:           v.CurrentPhase,
		PropertySize:           v.PropertySize,
		ExpectedCompletionDate: v.ExpectedCompletionDate,
		FinancingRequirements:  v.FinancingRequirements,
		FinancingDetails:       v.FinancingDetails,
		ResidentType:           v.ResidentType,
		AvgAgreementValue:      v.AvgAgreementValue,
		MarketValue:            v.MarketValue,
		NearbyProjects:         v.NearbyProjects,
		SurroundingCommunity:   v.SurroundingCommunity,
		EnquiryType:            v.EnquiryType,
		UnitsForSale:           v.UnitsForSale,
		TimeLimitMonths:        v.TimeLimitMonths,
		Remark:                 v.Remark,
		ApprovalStatus:         string(v.ApprovalStatus),
		CreatedAt:              v.CreatedAt,
	}
}
