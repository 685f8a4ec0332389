package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
	"github.com/NITESHMEHTA97/flashcard-app/internal/services"
)

type TransferHandler struct {
	transfer *services.TransferService
}

func NewTransferHandler(transfer *services.TransferService) *TransferHandler {
	return &TransferHandler{transfer: transfer}
}

// Export serves the deck export document as a downloadable JSON
// attachment.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid deck ID", r))
		return
	}

	doc, err := h.transfer.ExportDeck(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	filename := services.ExportFilename(doc.Deck.Name, time.Now())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(doc)
}

func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req models.ImportDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	deck, err := h.transfer.ImportDeck(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}
