package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// The "Content-Type" header is set to "application/json; charset=utf-8".
// A nil data writes the status code with an empty body, which is what
// 204 No Content replies need.
//
// If marshaling fails nothing is written to w and a wrapped error is
// returned, so the caller can still produce an error reply.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	if data == nil {
		w.WriteHeader(statusCode)
		return 0, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
