package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/dre_robot/internal/domain"
)

type ExecutionsRepository interface {
	Executions(ctx context.Context, limit, offset uint64) ([]*domain.Execution, int, error)
	ExecutionByID(ctx context.Context, id string) (*domain.Execution, error)
}

type Runner interface {
	Run(ctx context.Context) *domain.Result
}

type ExecutionsHandler struct {
	executionsRepository ExecutionsRepository
	runner               Runner
}

func NewExecutionsHandler(executionsRepository ExecutionsRepository, runner Runner) *ExecutionsHandler {
	return &ExecutionsHandler{
		executionsRepository: executionsRepository,
		runner:               runner,
	}
}

type GetExecutionsResponse struct {
	Executions []*domain.Execution `json:"executions"`
	Pagination Pagination          `json:"pagination"`
}

func (h *ExecutionsHandler) GetExecutions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := h.parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	requested := Pagination{Page: page, Limit: limit}

	executions, total, err := h.executionsRepository.Executions(r.Context(), requested.Limit, requested.Offset())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetExecutionsResponse{
		Executions: executions,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *ExecutionsHandler) GetExecution(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := uuid.Validate(id); err != nil {
		http.Error(w, "invalid execution id", http.StatusBadRequest)
		return
	}

	execution, err := h.executionsRepository.ExecutionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrExecutionNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, execution)
}

// RunExecution starts a robot run and answers with its result once it ends.
func (h *ExecutionsHandler) RunExecution(w http.ResponseWriter, r *http.Request) {
	result := h.runner.Run(r.Context())

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, result)
}

func (h *ExecutionsHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
