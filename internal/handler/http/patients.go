package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/utils"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/validators"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skip, err := queryInt(r, "skip")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	patients, err := h.services.PatientService.List(ctx, skip, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, patients, http.StatusOK)
}

func (h *Handler) addPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var patient models.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	added, err := h.services.PatientService.Add(ctx, patient)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", added.ID).Msg("patient record added")

	utils.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := patientIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	patient, err := h.services.PatientService.GetByID(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := patientIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	update, err := decodePatientUpdate(r.Body)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	updated, err := h.services.PatientService.Update(ctx, id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", id).Msg("patient record updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := patientIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.PatientService.Delete(ctx, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", id).Msg("patient record deleted")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patients, err := h.services.PatientService.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, patients, http.StatusOK)
}

func (h *Handler) patientStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.services.PatientService.Statistics(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// patientIDFromURL parses the {id} route parameter. A non-numeric id is a
// validation error, not a 404: the path shape is wrong, the resource was
// never looked up.
func patientIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr := &validators.ValidationError{}
		verr.Add("id", "must be an integer")
		return 0, verr
	}

	return id, nil
}

// queryInt parses an optional non-negative integer query parameter; absence
// means zero.
func queryInt(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr := &validators.ValidationError{}
		verr.Add(name, "must be an integer")
		return 0, verr
	}

	return value, nil
}

// decodePatientUpdate decodes a partial patient update, recording whether
// the "bmi" key was present at all. A null bmi clears the stored value; an
// absent bmi leaves it untouched. The two are indistinguishable after a
// plain struct decode, hence the raw-message pass.
func decodePatientUpdate(body io.Reader) (models.PatientUpdate, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return models.PatientUpdate{}, err
	}

	var update models.PatientUpdate
	if err := json.Unmarshal(raw, &update); err != nil {
		return models.PatientUpdate{}, err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return models.PatientUpdate{}, err
	}
	_, update.BMIProvided = keys["bmi"]

	return update, nil
}
