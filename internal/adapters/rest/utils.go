package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// WriteJSONError отправляет JSON-ответ с полями "message" и "status".
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"message": message,
		"status":  strconv.Itoa(statusCode),
	})
}

// WriteValidationError отправляет 400 с ошибками по каждому полю плюс
// общие "message" и "status".
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	body := make(map[string]string, len(fieldErrors)+2)
	for field, msg := range fieldErrors {
		body[field] = msg
	}
	body["message"] = "Validation failed"
	body["status"] = strconv.Itoa(http.StatusBadRequest)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(body)
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
