package types

import "fmt"

// SortKey selects the field a risk list projection is ordered by
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByCategory     SortKey = "category"
	SortByProbability  SortKey = "probability"
	SortByImpact       SortKey = "impact"
	SortBySeverity     SortKey = "severity"
	SortByStatus       SortKey = "status"
	SortByIdentifiedAt SortKey = "identifiedDate"
)

// IsValid checks if the sort key is valid
func (k SortKey) IsValid() bool {
	switch k {
	case SortByName,
		SortByCategory,
		SortByProbability,
		SortByImpact,
		SortBySeverity,
		SortByStatus,
		SortByIdentifiedAt:
		return true
	default:
		return false
	}
}

// Normalize returns the key, treating empty as SortBySeverity
func (k SortKey) Normalize() SortKey {
	if k == "" {
		return SortBySeverity
	}
	return k
}

// String returns the string representation of the sort key
func (k SortKey) String() string {
	return string(k)
}

// ParseSortKey parses a string into a SortKey
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(s)
	if !key.IsValid() {
		return "", fmt.Errorf("invalid sort key: %s", s)
	}
	return key, nil
}

// SortOrder is the direction of a sorted projection
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid checks if the sort order is valid
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// Normalize returns the order, treating empty as SortDesc
func (o SortOrder) Normalize() SortOrder {
	if o == "" {
		return SortDesc
	}
	return o
}

// String returns the string representation of the sort order
func (o SortOrder) String() string {
	return string(o)
}

// ParseSortOrder parses a string into a SortOrder
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(s)
	if !order.IsValid() {
		return "", fmt.Errorf("invalid sort order: %s", s)
	}
	return order, nil
}
