package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса в dst, запрещая неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest пишет ответ 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет ответ 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет ответ 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет ответ 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}
