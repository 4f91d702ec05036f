package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"taskboard/internal/errors"
	"taskboard/internal/services"
	"taskboard/internal/validation"
)

// maxBodyBytes caps form and JSON request bodies
const maxBodyBytes = 1 << 20

// Form field names accepted by POST /update. "task" is accepted as an alias
// of "description" for older clients.
const (
	formAction      = "action"
	formID          = "id"
	formDescription = "description"
	formTask        = "task"
	formPriority    = "priority"
)

// decodeForm reads the mutation payload from an urlencoded form body.
// Blank numeric fields count as absent; malformed ones are validation errors.
func decodeForm(w http.ResponseWriter, r *http.Request) (services.Payload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return services.Payload{}, errors.NewValidationError("malformed form body", err)
	}

	payload := services.Payload{
		Action: strings.TrimSpace(r.PostForm.Get(formAction)),
	}

	ve := validation.NewValidationError()

	if values, ok := r.PostForm[formDescription]; ok && len(values) > 0 {
		payload.Description = &values[0]
	} else if values, ok := r.PostForm[formTask]; ok && len(values) > 0 {
		payload.Description = &values[0]
	}

	payload.ID = parseIntField(ve, formID, r.PostForm.Get(formID))
	payload.Priority = parseIntField(ve, formPriority, r.PostForm.Get(formPriority))

	if ve.HasErrors() {
		return services.Payload{}, errors.NewValidationError("malformed form field", ve)
	}
	return payload, nil
}

func parseIntField(ve *validation.ValidationError, field, raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ve.AddInvalidFormatError(field, raw, "integer")
		return nil
	}
	return &n
}

// decodeJSON reads a JSON mutation payload
func decodeJSON(w http.ResponseWriter, r *http.Request) (services.Payload, error) {
	var payload services.Payload

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		if err == io.EOF {
			return payload, errors.NewValidationError("request body is empty", err)
		}
		return payload, errors.NewValidationError(fmt.Sprintf("malformed JSON body: %v", err), err)
	}
	return payload, nil
}

// parsePathID reads the {id} path value
func parsePathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ve := validation.NewValidationError()
		ve.AddInvalidFormatError(formID, raw, "integer")
		return 0, errors.NewValidationError("malformed task id", ve)
	}
	return id, nil
}
