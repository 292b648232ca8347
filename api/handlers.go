package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gomandate/domain/core"
	"gomandate/domain/decision"
	"gomandate/domain/mandate"
	"gomandate/domain/proposal"
	"gomandate/internal/errors"
	"gomandate/models"
)

// EvaluateRequest is the evaluate endpoint's input: a frozen mandate and
// proposal resolved by the caller
type EvaluateRequest struct {
	Mandate  mandate.Context  `json:"mandate"`
	Proposal proposal.Context `json:"proposal"`
}

// EvaluateResponse wraps the decision object with its trace and, when
// persistence is enabled, the stored record ID
type EvaluateResponse struct {
	ID       string              `json:"id,omitempty"`
	Decision decision.Object     `json:"decision"`
	Trace    decision.ModelTrace `json:"trace"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.InvalidInput("request body is not valid JSON"))
		return
	}
	if req.Mandate.Kind != mandate.KindWeighted && req.Mandate.Kind != mandate.KindOutcomeRanked {
		s.writeError(w, http.StatusBadRequest, errors.InvalidInput("mandate.kind must be weighted or outcome_ranked"))
		return
	}

	obj, trace := s.evaluator.Evaluate(r.Context(), req.Mandate, req.Proposal)
	s.tracker.Record(trace)

	resp := EvaluateResponse{Decision: obj, Trace: trace}

	if s.decisions != nil {
		record, err := buildRecord(req, obj, trace)
		if err == nil {
			err = s.decisions.Save(r.Context(), record)
		}
		if err != nil {
			// Evaluation succeeded; a storage problem must not reject it
			s.logger.Error("[API] failed to persist decision: %v", err)
		} else {
			resp.ID = record.ID
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDecision(w http.ResponseWriter, r *http.Request) {
	if s.decisions == nil {
		s.writeError(w, http.StatusNotImplemented, errors.New(errors.CodeDatabaseError, "decision persistence is not configured"))
		return
	}

	id, err := core.ParseDecisionID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.InvalidInput("decision id is required"))
		return
	}

	record, err := s.decisions.Get(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.GetCode(err) == errors.CodeNotFound {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err)
		return
	}

	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"model_calls": s.tracker.Summary(),
	})
}

func buildRecord(req EvaluateRequest, obj decision.Object, trace decision.ModelTrace) (*models.DecisionRecord, error) {
	decisionJSON, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize decision")
	}
	traceJSON, err := json.Marshal(trace)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize trace")
	}

	return &models.DecisionRecord{
		ID:             core.NewID().String(),
		ProposalTitle:  req.Proposal.Title,
		MandateKind:    string(req.Mandate.Kind),
		Recommendation: string(obj.Recommendation),
		HumanRequired:  obj.HumanRequired,
		Confidence:     obj.Confidence,
		TradeoffScore:  obj.TradeoffScore,
		Decision:       decisionJSON,
		Trace:          traceJSON,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("[API] failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}
