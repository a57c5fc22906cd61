package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON sends v with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteProblem sends the shared error shape (simplified RFC7807 Problem+JSON).
func WriteProblem(w http.ResponseWriter, code int, typ, detail string) {
	resp := map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	}
	WriteJSON(w, code, resp)
}
