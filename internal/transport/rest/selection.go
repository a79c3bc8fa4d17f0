package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kikiarya/hsc-planner/internal/domain"
	"github.com/kikiarya/hsc-planner/internal/service/selection"
)

const maxBodyBytes = 16 << 10

// selectionService defines the minimal interface needed by SelectionHandler.
type selectionService interface {
	ListSelections(ctx context.Context) ([]domain.Selection, error)
	CreateSelection(ctx context.Context, input selection.CreateSelectionInput) (*domain.Selection, error)
	DeleteSelection(ctx context.Context, input selection.DeleteSelectionInput) error
	ListSubjects(ctx context.Context, input selection.ListSubjectsInput) ([]domain.Subject, error)
}

// SelectionHandler serves the subject catalog and selection endpoints.
type SelectionHandler struct {
	svc selectionService
	log *slog.Logger
}

// NewSelectionHandler creates a SelectionHandler.
func NewSelectionHandler(svc selectionService, logger *slog.Logger) *SelectionHandler {
	return &SelectionHandler{svc: svc, log: logger.With("handler", "selection")}
}

type createSelectionRequest struct {
	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	Category    *string `json:"category"`
	Reason      *string `json:"reason"`
}

type selectionResponse struct {
	ID          string    `json:"id"`
	SubjectCode string    `json:"subject_code"`
	SubjectName string    `json:"subject_name"`
	Category    *string   `json:"category"`
	Reason      *string   `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

type selectionListResponse struct {
	Selections []selectionResponse `json:"selections"`
}

type subjectResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Units    int    `json:"units"`
}

type subjectListResponse struct {
	Subjects []subjectResponse `json:"subjects"`
}

// ListSelections handles GET /v1/selections.
func (h *SelectionHandler) ListSelections(w http.ResponseWriter, r *http.Request) {
	sels, err := h.svc.ListSelections(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := selectionListResponse{Selections: make([]selectionResponse, 0, len(sels))}
	for _, s := range sels {
		resp.Selections = append(resp.Selections, toSelectionResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateSelection handles POST /v1/selections.
func (h *SelectionHandler) CreateSelection(w http.ResponseWriter, r *http.Request) {
	var req createSelectionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sel, err := h.svc.CreateSelection(r.Context(), selection.CreateSelectionInput{
		SubjectCode: req.SubjectCode,
		SubjectName: req.SubjectName,
		Category:    req.Category,
		Reason:      req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/selections/"+sel.ID.String())
	writeJSON(w, http.StatusCreated, toSelectionResponse(*sel))
}

// DeleteSelection handles DELETE /v1/selections/{id}.
func (h *SelectionHandler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid selection id")
		return
	}

	if err := h.svc.DeleteSelection(r.Context(), selection.DeleteSelectionInput{SelectionID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSubjects handles GET /v1/subjects[?category=].
func (h *SelectionHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	var input selection.ListSubjectsInput
	if c := r.URL.Query().Get("category"); c != "" {
		input.Category = &c
	}

	subjects, err := h.svc.ListSubjects(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := subjectListResponse{Subjects: make([]subjectResponse, 0, len(subjects))}
	for _, s := range subjects {
		resp.Subjects = append(resp.Subjects, subjectResponse{
			Code:     s.Code,
			Name:     s.Name,
			Category: string(s.Category),
			Units:    s.Units,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toSelectionResponse(s domain.Selection) selectionResponse {
	resp := selectionResponse{
		ID:          s.ID.String(),
		SubjectCode: s.SubjectCode,
		SubjectName: s.SubjectName,
		Reason:      s.Reason,
		CreatedAt:   s.CreatedAt,
	}
	if s.Category != nil {
		c := string(*s.Category)
		resp.Category = &c
	}
	return resp
}
