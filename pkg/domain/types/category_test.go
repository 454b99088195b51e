package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

func TestRiskCategory_IsValid(t *testing.T) {
	for _, category := range types.AllRiskCategories() {
		gt.B(t, category.IsValid()).True()
	}

	gt.B(t, types.RiskCategory("invalid").IsValid()).False()
	gt.B(t, types.RiskCategory("").IsValid()).False()
	gt.B(t, types.RiskCategory("technical").IsValid()).False()
}

func TestParseRiskCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.RiskCategory
		wantErr bool
	}{
		{
			name:  "valid technical",
			input: "Technical",
			want:  types.CategoryTechnical,
		},
		{
			name:  "valid schedule",
			input: "Schedule",
			want:  types.CategorySchedule,
		},
		{
			name:    "lowercase is rejected",
			input:   "cost",
			wantErr: true,
		},
		{
			name:    "unknown category",
			input:   "Legal",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseRiskCategory(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}
