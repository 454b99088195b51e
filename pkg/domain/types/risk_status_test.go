package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

func TestRiskStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status types.RiskStatus
		want   bool
	}{
		{
			name:   "valid open",
			status: types.RiskStatusOpen,
			want:   true,
		},
		{
			name:   "valid mitigating",
			status: types.RiskStatusMitigating,
			want:   true,
		},
		{
			name:   "valid closed",
			status: types.RiskStatusClosed,
			want:   true,
		},
		{
			name:   "valid accepted",
			status: types.RiskStatusAccepted,
			want:   true,
		},
		{
			name:   "invalid status",
			status: types.RiskStatus("invalid"),
			want:   false,
		},
		{
			name:   "empty status",
			status: types.RiskStatus(""),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.status.IsValid()).True()
			} else {
				gt.B(t, tt.status.IsValid()).False()
			}
		})
	}
}

func TestRiskStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from types.RiskStatus
		to   types.RiskStatus
		want bool
	}{
		{
			name: "open to mitigating",
			from: types.RiskStatusOpen,
			to:   types.RiskStatusMitigating,
			want: true,
		},
		{
			name: "open to accepted",
			from: types.RiskStatusOpen,
			to:   types.RiskStatusAccepted,
			want: true,
		},
		{
			name: "open to closed skips mitigating",
			from: types.RiskStatusOpen,
			to:   types.RiskStatusClosed,
			want: false,
		},
		{
			name: "mitigating to closed",
			from: types.RiskStatusMitigating,
			to:   types.RiskStatusClosed,
			want: true,
		},
		{
			name: "mitigating to accepted",
			from: types.RiskStatusMitigating,
			to:   types.RiskStatusAccepted,
			want: true,
		},
		{
			name: "mitigating back to open",
			from: types.RiskStatusMitigating,
			to:   types.RiskStatusOpen,
			want: false,
		},
		{
			name: "closed is terminal",
			from: types.RiskStatusClosed,
			to:   types.RiskStatusOpen,
			want: false,
		},
		{
			name: "accepted is terminal",
			from: types.RiskStatusAccepted,
			to:   types.RiskStatusMitigating,
			want: false,
		},
		{
			name: "same status is a no-op",
			from: types.RiskStatusClosed,
			to:   types.RiskStatusClosed,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.from.CanTransitionTo(tt.to)).True()
			} else {
				gt.B(t, tt.from.CanTransitionTo(tt.to)).False()
			}
		})
	}
}

func TestRiskStatus_IsTerminal(t *testing.T) {
	gt.B(t, types.RiskStatusClosed.IsTerminal()).True()
	gt.B(t, types.RiskStatusAccepted.IsTerminal()).True()
	gt.B(t, types.RiskStatusOpen.IsTerminal()).False()
	gt.B(t, types.RiskStatusMitigating.IsTerminal()).False()
}

func TestRiskStatus_Normalize(t *testing.T) {
	gt.Value(t, types.RiskStatus("").Normalize()).Equal(types.RiskStatusOpen)
	gt.Value(t, types.RiskStatusClosed.Normalize()).Equal(types.RiskStatusClosed)
}
