package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

const maxBodyBytes = 1 << 20

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse тело ответа 422 со списком ошибок проверки
type ValidationErrorResponse struct {
	Error  string                          `json:"error"`
	Errors []domain.BookingValidationError `json:"errors"`
}

// DecodeJSON декодирует тело запроса; неизвестные поля и пустое тело считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}

// RespondJSON пишет JSON ответ; data == nil дает пустое тело
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondBadGateway ошибка удаленного хранилища (изменение откатено)
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// RespondValidationErrors 422 со всеми найденными ошибками
func RespondValidationErrors(w http.ResponseWriter, errs domain.ValidationErrors) {
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  "booking validation failed",
		Errors: errs,
	})
}
