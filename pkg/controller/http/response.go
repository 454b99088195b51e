package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/usecase"
	"github.com/taskops-lab/riskregister/pkg/utils/errutil"
	"github.com/taskops-lab/riskregister/pkg/utils/safe"
)

type riskResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"projectId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Probability    float64   `json:"probability"`
	Impact         int       `json:"impact"`
	Severity       float64   `json:"severity"`
	SeverityBand   string    `json:"severityBand"`
	Status         string    `json:"status"`
	IdentifiedDate time.Time `json:"identifiedDate"`
	OwnerID        string    `json:"ownerId"`
	Revision       int64     `json:"revision"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toRiskResponse(risk *model.Risk) riskResponse {
	return riskResponse{
		ID:             risk.ID.String(),
		ProjectID:      risk.ProjectID.String(),
		Name:           risk.Name,
		Description:    risk.Description,
		Category:       risk.Category.String(),
		Probability:    risk.Probability,
		Impact:         risk.Impact,
		Severity:       risk.Severity,
		SeverityBand:   string(model.BandOf(risk.Severity)),
		Status:         risk.Status.String(),
		IdentifiedDate: risk.IdentifiedAt,
		OwnerID:        risk.OwnerID.String(),
		Revision:       risk.Revision,
		UpdatedAt:      risk.UpdatedAt,
	}
}

func toRiskResponses(risks []*model.Risk) []riskResponse {
	resp := make([]riskResponse, len(risks))
	for i, risk := range risks {
		resp[i] = toRiskResponse(risk)
	}
	return resp
}

type analysisResponse struct {
	ID            string    `json:"id"`
	RiskID        string    `json:"riskId"`
	AnalysisType  string    `json:"analysisType"`
	MatrixScore   string    `json:"matrixScore"`
	ExpectedValue float64   `json:"expectedValue"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toAnalysisResponse(a *model.RiskAnalysis) analysisResponse {
	return analysisResponse{
		ID:            a.ID.String(),
		RiskID:        a.RiskID.String(),
		AnalysisType:  a.AnalysisType,
		MatrixScore:   a.MatrixScore,
		ExpectedValue: a.ExpectedValue,
		CreatedBy:     a.CreatedBy.String(),
		CreatedAt:     a.CreatedAt,
	}
}

func toAnalysisResponses(analyses []*model.RiskAnalysis) []analysisResponse {
	resp := make([]analysisResponse, len(analyses))
	for i, a := range analyses {
		resp[i] = toAnalysisResponse(a)
	}
	return resp
}

type planResponse struct {
	ID             string    `json:"id"`
	RiskID         string    `json:"riskId"`
	Strategy       string    `json:"strategy"`
	Description    string    `json:"description"`
	PlannedActions string    `json:"plannedActions"`
	Status         string    `json:"status"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toPlanResponse(p *model.RiskResponsePlan) planResponse {
	return planResponse{
		ID:             p.ID.String(),
		RiskID:         p.RiskID.String(),
		Strategy:       p.Strategy.String(),
		Description:    p.Description,
		PlannedActions: p.PlannedActions,
		Status:         p.Status.String(),
		CreatedBy:      p.CreatedBy.String(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPlanResponses(plans []*model.RiskResponsePlan) []planResponse {
	resp := make([]planResponse, len(plans))
	for i, p := range plans {
		resp[i] = toPlanResponse(p)
	}
	return resp
}

type riskDetailResponse struct {
	Risk     riskResponse       `json:"risk"`
	Analyses []analysisResponse `json:"analyses"`
	Plans    []planResponse     `json:"responsePlans"`
}

type matrixCellResponse struct {
	Severity float64  `json:"severity"`
	Band     string   `json:"band"`
	RiskIDs  []string `json:"riskIds"`
}

func toMatrixResponse(grid model.MatrixGrid) map[string]matrixCellResponse {
	resp := make(map[string]matrixCellResponse, model.MatrixSize*model.MatrixSize)
	for p := 1; p <= model.MatrixSize; p++ {
		for i := 1; i <= model.MatrixSize; i++ {
			key := model.MatrixKey(p, i)
			cell := grid.Cell(p, i)
			ids := make([]string, len(cell))
			for n, risk := range cell {
				ids[n] = risk.ID.String()
			}
			resp[key] = matrixCellResponse{
				Severity: model.CellSeverity(p, i),
				Band:     string(model.CellBand(p, i)),
				RiskIDs:  ids,
			}
		}
	}
	return resp
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// statusOf maps use case sentinels to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}
