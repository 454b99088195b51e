package types

import "fmt"

// RiskCategory classifies a risk by its source area
type RiskCategory string

const (
	CategoryTechnical     RiskCategory = "Technical"
	CategorySchedule      RiskCategory = "Schedule"
	CategoryCost          RiskCategory = "Cost"
	CategoryResource      RiskCategory = "Resource"
	CategoryStakeholder   RiskCategory = "Stakeholder"
	CategoryQuality       RiskCategory = "Quality"
	CategoryCommunication RiskCategory = "Communication"
)

// AllRiskCategories returns all valid risk categories
func AllRiskCategories() []RiskCategory {
	return []RiskCategory{
		CategoryTechnical,
		CategorySchedule,
		CategoryCost,
		CategoryResource,
		CategoryStakeholder,
		CategoryQuality,
		CategoryCommunication,
	}
}

// IsValid checks if the risk category is valid
func (c RiskCategory) IsValid() bool {
	switch c {
	case CategoryTechnical,
		CategorySchedule,
		CategoryCost,
		CategoryResource,
		CategoryStakeholder,
		CategoryQuality,
		CategoryCommunication:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk category
func (c RiskCategory) String() string {
	return string(c)
}

// ParseRiskCategory parses a string into a RiskCategory
func ParseRiskCategory(s string) (RiskCategory, error) {
	category := RiskCategory(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid risk category: %s", s)
	}
	return category, nil
}
