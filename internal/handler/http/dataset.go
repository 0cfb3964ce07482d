package http

import (
	"encoding/csv"
	"io"
	"mime"
	"net/http"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/utils"
)

// datasetFileField is the multipart form field carrying the uploaded CSV.
const datasetFileField = "file"

// datasetResponse reports how many records replaced the collection.
type datasetResponse struct {
	Loaded int `json:"loaded"`
}

// loadDataset accepts a stroke dataset CSV, either as a multipart upload
// under the "file" field or as a raw request body, and hands the decoded
// rows to the patient service. Decoding stops at the transport boundary:
// the handler knows CSV, the service knows what the columns mean.
func (h *Handler) loadDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := datasetBody(r)
	if err != nil {
		log.Err(err).Msg("Invalid CSV upload")
		h.writeError(w, r, errInvalidCSV)
		return
	}
	defer body.Close()

	rows, err := decodeCSVRows(body)
	if err != nil {
		log.Err(err).Msg("Invalid CSV was passed")
		h.writeError(w, r, errInvalidCSV)
		return
	}

	count, err := h.services.PatientService.LoadDataset(ctx, rows)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, datasetResponse{Loaded: count}, http.StatusOK)
}

// datasetBody picks the CSV source: the "file" part of a multipart form
// when there is one, the raw request body otherwise.
func datasetBody(r *http.Request) (io.ReadCloser, error) {
	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || contentType != "multipart/form-data" {
		return r.Body, nil
	}

	file, _, err := r.FormFile(datasetFileField)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// decodeCSVRows reads a header row followed by data rows and returns each
// data row as a header-keyed field map.
func decodeCSVRows(body io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(body)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, column := range header {
			row[column] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
