package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Szelwin/qrGenerator/sheet"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type generateRequest struct {
	Start int `json:"start"`
	End   int `json:"end"` // exclusive
}

// handleGenerate builds a QR sheet document for the requested range and
// streams it back as a .docx attachment.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := sheet.Generate(req.Start, req.End, &buf, s.Layout); err != nil {
		if errors.Is(err, sheet.ErrEmptyRange) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.Log.Error("generation failed", "start", req.Start, "end", req.End, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("QR_%d_%d.docx", req.Start, req.End)
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())

	s.Log.Info("document generated", "start", req.Start, "end", req.End, "bytes", buf.Len())
}
