// internal/response/response.go
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the fixed response body. Success/failure travels in the
// body only; every response is HTTP 200.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataEnvelope is the contact-form variant, which always carries a data
// object (default empty).
type DataEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func JSON(w http.ResponseWriter, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Envelope{Success: success, Message: message})
}

func JSONWithData(w http.ResponseWriter, success bool, message string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DataEnvelope{Success: success, Message: message, Data: data})
}
