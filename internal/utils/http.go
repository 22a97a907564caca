package utils

// The helpers in this file answer requests like the sales backend does. They
// are fixtures for the fake backends of tests; the binaries never serve HTTP.

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
// On a marshaling failure it answers 500 and returns the error.
// Test fixture.
//
// Example usage:
//
//	WriteJSON(w, models.DeleteResult{Deleted: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the {"error": message} body the sales backend uses for
// failed requests. Test fixture.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, map[string]string{"error": message}, statusCode)
}
