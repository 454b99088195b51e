package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
	"github.com/taskops-lab/riskregister/pkg/usecase"
)

type createRiskRequest struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Probability    float64    `json:"probability"`
	Impact         int        `json:"impact"`
	Status         string     `json:"status"`
	IdentifiedDate *time.Time `json:"identifiedDate"`
	OwnerID        string     `json:"ownerId"`
}

func (s *Server) createRisk(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))

	var req createRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid request body", goerr.V("cause", err)))
		return
	}

	input := usecase.CreateRiskInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    types.RiskCategory(req.Category),
		Probability: req.Probability,
		Impact:      req.Impact,
		Status:      types.RiskStatus(req.Status),
		OwnerID:     types.UserID(req.OwnerID),
	}
	if req.IdentifiedDate != nil {
		input.IdentifiedAt = *req.IdentifiedDate
	}

	created, err := s.uc.Risk.CreateRisk(r.Context(), projectID, actingUserFrom(r.Context()), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, toRiskResponse(created))
}

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))
	q := r.URL.Query()

	key := types.SortKey(q.Get("sort")).Normalize()
	if !key.IsValid() {
		respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid sort key", goerr.V("sort", q.Get("sort"))))
		return
	}
	order := types.SortOrder(q.Get("order")).Normalize()
	if !order.IsValid() {
		respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid sort order", goerr.V("order", q.Get("order"))))
		return
	}

	filter := &model.RiskFilter{
		Category: types.RiskCategory(q.Get("category")),
		Status:   types.RiskStatus(q.Get("status")),
		Query:    q.Get("q"),
	}

	risks, err := s.uc.View.ListRiskView(r.Context(), projectID, key, order, filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"risks": toRiskResponses(risks)})
}

func (s *Server) getRisk(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	detail, err := s.uc.Risk.GetRiskDetail(r.Context(), projectID, riskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, riskDetailResponse{
		Risk:     toRiskResponse(detail.Risk),
		Analyses: toAnalysisResponses(detail.Analyses),
		Plans:    toPlanResponses(detail.Plans),
	})
}

type updateRiskRequest struct {
	Revision    int64    `json:"revision"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Probability *float64 `json:"probability"`
	Impact      *int     `json:"impact"`
	Status      *string  `json:"status"`
	OwnerID     *string  `json:"ownerId"`
}

func (s *Server) updateRisk(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	var req updateRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid request body", goerr.V("cause", err)))
		return
	}

	patch := &model.RiskPatch{
		Name:        req.Name,
		Description: req.Description,
		Probability: req.Probability,
		Impact:      req.Impact,
	}
	if req.Category != nil {
		category := types.RiskCategory(*req.Category)
		patch.Category = &category
	}
	if req.Status != nil {
		status := types.RiskStatus(*req.Status)
		patch.Status = &status
	}
	if req.OwnerID != nil {
		ownerID := types.UserID(*req.OwnerID)
		patch.OwnerID = &ownerID
	}

	updated, err := s.uc.Risk.UpdateRisk(r.Context(), projectID, actingUserFrom(r.Context()), riskID, req.Revision, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toRiskResponse(updated))
}

func (s *Server) deleteRisk(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	if err := s.uc.Risk.DeleteRisk(r.Context(), projectID, actingUserFrom(r.Context()), riskID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listAnalyses(w http.ResponseWriter, r *http.Request) {
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	analyses, err := s.uc.Risk.ListAnalyses(r.Context(), riskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"analyses": toAnalysisResponses(analyses)})
}

type createAnalysisRequest struct {
	AnalysisType string `json:"analysisType"`
}

func (s *Server) createReassessment(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	// Body is optional; an empty one records a plain reassessment
	var req createAnalysisRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid request body", goerr.V("cause", err)))
			return
		}
	}

	created, err := s.uc.Risk.RecordReassessment(r.Context(), projectID, actingUserFrom(r.Context()), riskID, req.AnalysisType)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, toAnalysisResponse(created))
}

type createPlanRequest struct {
	Strategy       string `json:"strategy"`
	Description    string `json:"description"`
	PlannedActions string `json:"plannedActions"`
	Status         string `json:"status"`
}

func (s *Server) createPlan(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid request body", goerr.V("cause", err)))
		return
	}

	input := usecase.CreatePlanInput{
		Strategy:       types.ResponseStrategy(req.Strategy),
		Description:    req.Description,
		PlannedActions: req.PlannedActions,
		Status:         types.PlanStatus(req.Status),
	}

	created, err := s.uc.Plan.CreatePlan(r.Context(), projectID, actingUserFrom(r.Context()), riskID, input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, toPlanResponse(created))
}

func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	plans, err := s.uc.Plan.ListPlans(r.Context(), riskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"responsePlans": toPlanResponses(plans)})
}

type updatePlanRequest struct {
	Strategy       *string `json:"strategy"`
	Description    *string `json:"description"`
	PlannedActions *string `json:"plannedActions"`
	Status         *string `json:"status"`
}

func (s *Server) updatePlan(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))
	planID := types.PlanID(chi.URLParam(r, "planID"))

	var req updatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid request body", goerr.V("cause", err)))
		return
	}

	patch := &model.PlanPatch{
		Description:    req.Description,
		PlannedActions: req.PlannedActions,
	}
	if req.Strategy != nil {
		strategy := types.ResponseStrategy(*req.Strategy)
		patch.Strategy = &strategy
	}
	if req.Status != nil {
		status := types.PlanStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := s.uc.Plan.UpdatePlan(r.Context(), projectID, actingUserFrom(r.Context()), planID, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toPlanResponse(updated))
}

func (s *Server) getMatrix(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))

	grid, err := s.uc.View.Matrix(r.Context(), projectID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"cells": toMatrixResponse(grid)})
}

func (s *Server) getRole(w http.ResponseWriter, r *http.Request) {
	projectID := types.ProjectID(chi.URLParam(r, "projectID"))

	userID := actingUserFrom(r.Context())
	if q := r.URL.Query().Get("user"); q != "" {
		userID = types.UserID(q)
	}

	role, err := s.uc.View.ResolveRole(r.Context(), projectID, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]string{
		"userId": userID.String(),
		"role":   role.String(),
	})
}
