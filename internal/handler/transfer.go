package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/msomdec/jobtracker/internal/transfer"
)

const maxImportBytes = 5 << 20 // 5MB

// TransferHandler exports and imports the application collection.
type TransferHandler struct {
	reconciler *transfer.Reconciler
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(reconciler *transfer.Reconciler) *TransferHandler {
	return &TransferHandler{reconciler: reconciler}
}

// HandleExport downloads the applications as a JSON document.
// GET /api/applications/export
func (h *TransferHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, name, err := h.reconciler.Export()
	if err != nil {
		writeServiceError(w, "export applications", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("write export", "error", err)
	}
}

// HandlePreview checks an import document and reports its size.
// POST /api/applications/import/preview
// Response: {"count": N}
func (h *TransferHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	data, ok := readImport(w, r)
	if !ok {
		return
	}

	c, err := h.reconciler.Preview(data)
	if err != nil {
		writeServiceError(w, "preview import", err)
		return
	}
	writeJSON(w, http.StatusOK, previewDTO{Count: c.Count()})
}

// HandleImport applies an import document.
// POST /api/applications/import?mode=merge|replace
func (h *TransferHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	mode, err := transfer.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeServiceError(w, "import applications", err)
		return
	}

	data, ok := readImport(w, r)
	if !ok {
		return
	}

	res, err := h.reconciler.Import(data, mode)
	if err != nil {
		writeServiceError(w, "import applications", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func readImport(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "Import file is too large.")
		return nil, false
	}
	return data, true
}
