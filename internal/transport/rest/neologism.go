package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/internal/service/neologism"
)

// neologismService defines the minimal interface needed by NeologismHandler.
type neologismService interface {
	Submit(ctx context.Context, input neologism.SubmitInput) (domain.Submission, error)
	Get(ctx context.Context, id uuid.UUID) (neologism.SubmissionDetail, error)
	List(ctx context.Context, input neologism.ListInput) ([]domain.Submission, error)
	Resolve(ctx context.Context, input neologism.ResolveInput) (domain.Submission, error)
}

// NeologismHandler serves submission REST endpoints.
type NeologismHandler struct {
	svc neologismService
	log *slog.Logger
}

// NewNeologismHandler creates a NeologismHandler.
func NewNeologismHandler(svc neologismService, logger *slog.Logger) *NeologismHandler {
	return &NeologismHandler{svc: svc, log: logger.With("handler", "neologism")}
}

type submitRequest struct {
	Word           string  `json:"word"`
	UserDefinition string  `json:"userDefinition"`
	Context        *string `json:"context,omitempty"`
}

type resolveRequest struct {
	Choice   string  `json:"choice"`
	Feedback *string `json:"feedback,omitempty"`
}

type submissionResponse struct {
	ID             string    `json:"id"`
	Word           string    `json:"word"`
	UserDefinition string    `json:"userDefinition"`
	Context        *string   `json:"context,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type providerResponseResponse struct {
	ID            string                         `json:"id"`
	Provider      string                         `json:"provider"`
	Definition    *domain.StandardizedDefinition `json:"definition,omitempty"`
	FailureKind   *string                        `json:"failureKind,omitempty"`
	FailureDetail *string                        `json:"failureDetail,omitempty"`
	ReceivedAt    time.Time                      `json:"receivedAt"`
}

type evaluationResponse struct {
	ID                 string    `json:"id"`
	ResponseIDs        []string  `json:"responseIds"`
	Conflict           bool      `json:"conflict"`
	Explanation        string    `json:"explanation"`
	ResolutionChoice   *string   `json:"resolutionChoice,omitempty"`
	ResolutionFeedback *string   `json:"resolutionFeedback,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

type submissionDetailResponse struct {
	Submission submissionResponse         `json:"submission"`
	Responses  []providerResponseResponse `json:"responses"`
	Evaluation *evaluationResponse        `json:"evaluation,omitempty"`
}

type listResponse struct {
	Submissions []submissionResponse `json:"submissions"`
}

// Submit handles POST /api/neologisms. The evaluation pipeline runs in the
// background, so the response is 202 with the submission still pending.
func (h *NeologismHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.svc.Submit(r.Context(), neologism.SubmitInput{
		Word:           req.Word,
		UserDefinition: req.UserDefinition,
		Context:        req.Context,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, toSubmissionResponse(sub))
}

// List handles GET /api/neologisms.
func (h *NeologismHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	subs, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := listResponse{Submissions: make([]submissionResponse, 0, len(subs))}
	for _, sub := range subs {
		resp.Submissions = append(resp.Submissions, toSubmissionResponse(sub))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/neologisms/{id}.
func (h *NeologismHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailResponse(detail))
}

// Resolve handles POST /api/neologisms/{id}/resolve.
func (h *NeologismHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.svc.Resolve(r.Context(), neologism.ResolveInput{
		SubmissionID: id,
		Choice:       req.Choice,
		Feedback:     req.Feedback,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

func parseListInput(r *http.Request) (neologism.ListInput, error) {
	var input neologism.ListInput
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		status := domain.SubmissionStatus(raw)
		input.Status = &status
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return input, domain.NewValidationError("limit", "must be an integer")
		}
		input.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return input, domain.NewValidationError("offset", "must be an integer")
		}
		input.Offset = offset
	}
	return input, nil
}

func toSubmissionResponse(sub domain.Submission) submissionResponse {
	return submissionResponse{
		ID:             sub.ID.String(),
		Word:           sub.Word,
		UserDefinition: sub.UserDefinition,
		Context:        sub.Context,
		Status:         string(sub.Status),
		CreatedAt:      sub.CreatedAt,
		UpdatedAt:      sub.UpdatedAt,
	}
}

func toDetailResponse(detail neologism.SubmissionDetail) submissionDetailResponse {
	resp := submissionDetailResponse{
		Submission: toSubmissionResponse(detail.Submission),
		Responses:  make([]providerResponseResponse, 0, len(detail.Responses)),
	}
	for _, pr := range detail.Responses {
		resp.Responses = append(resp.Responses, providerResponseResponse{
			ID:            pr.ID.String(),
			Provider:      pr.Provider,
			Definition:    pr.Definition,
			FailureKind:   pr.FailureKind,
			FailureDetail: pr.FailureDetail,
			ReceivedAt:    pr.ReceivedAt,
		})
	}
	if detail.Evaluation != nil {
		ev := detail.Evaluation
		ids := make([]string, 0, len(ev.ResponseIDs))
		for _, id := range ev.ResponseIDs {
			ids = append(ids, id.String())
		}
		resp.Evaluation = &evaluationResponse{
			ID:                 ev.ID.String(),
			ResponseIDs:        ids,
			Conflict:           ev.Conflict,
			Explanation:        ev.Explanation,
			ResolutionChoice:   ev.ResolutionChoice,
			ResolutionFeedback: ev.ResolutionFeedback,
			CreatedAt:          ev.CreatedAt,
		}
	}
	return resp
}
