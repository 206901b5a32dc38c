package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/splitpot/splitpot/internal/domain"
)

// DatasetService defines the behavior needed by DatasetHandler.
type DatasetService interface {
	Export(ctx context.Context) (*domain.Dataset, error)
	Import(ctx context.Context, ds *domain.Dataset) error
}

// DatasetHandler handles whole-dataset export and import.
type DatasetHandler struct {
	datasetUC DatasetService
}

// NewDatasetHandler creates a new DatasetHandler.
func NewDatasetHandler(datasetUC DatasetService) *DatasetHandler {
	return &DatasetHandler{datasetUC: datasetUC}
}

// Export streams the full dataset envelope.
func (h *DatasetHandler) Export(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasetUC.Export(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export dataset", err.Error())
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="splitpot.json"`)
	writeJSON(w, http.StatusOK, ds)
}

// Import replaces all state with the posted envelope. Unknown fields are
// rejected so a typo'd envelope fails loudly instead of half-loading.
func (h *DatasetHandler) Import(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var ds domain.Dataset
	if err := dec.Decode(&ds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid dataset envelope", err.Error())
		return
	}

	if err := h.datasetUC.Import(r.Context(), &ds); err != nil {
		writeError(w, mapDomainError(err), "failed to import dataset", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
