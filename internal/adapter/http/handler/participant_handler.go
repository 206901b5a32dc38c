package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitpot/splitpot/internal/adapter/http/dto"
	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/usecase"
)

// ParticipantService defines the behavior needed by ParticipantHandler.
type ParticipantService interface {
	CreateParticipant(ctx context.Context, input usecase.CreateParticipantInput) (*domain.Participant, error)
	GetParticipant(ctx context.Context, id string) (*domain.Participant, error)
	ListParticipants(ctx context.Context) ([]*domain.Participant, error)
	RenameParticipant(ctx context.Context, id, name string) (*domain.Participant, error)
	DeleteParticipant(ctx context.Context, id string) error
}

// ParticipantHandler handles participant-related HTTP requests.
type ParticipantHandler struct {
	participantUC ParticipantService
}

// NewParticipantHandler creates a new ParticipantHandler.
func NewParticipantHandler(participantUC ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantUC: participantUC}
}

// Create registers a new participant.
func (h *ParticipantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	participant, err := h.participantUC.CreateParticipant(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create participant", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ParticipantFromDomain(participant))
}

// Get retrieves a participant by ID.
func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing participant ID", "")
		return
	}

	participant, err := h.participantUC.GetParticipant(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get participant", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ParticipantFromDomain(participant))
}

// List lists all participants.
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.participantUC.ListParticipants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list participants", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ParticipantsFromDomain(participants))
}

// Update renames a participant.
func (h *ParticipantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing participant ID", "")
		return
	}

	var req dto.UpdateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	participant, err := h.participantUC.RenameParticipant(r.Context(), id, req.Name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to rename participant", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ParticipantFromDomain(participant))
}

// Delete removes a participant and everything that depends on them.
func (h *ParticipantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing participant ID", "")
		return
	}

	if err := h.participantUC.DeleteParticipant(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete participant", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
