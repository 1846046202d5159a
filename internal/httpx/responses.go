package httpx

import (
	"net/http"

	"github.com/goccy/go-json"

	"bookcatalog/internal/logging"
)

// ListResponse is the envelope for endpoints returning a collection.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

// ItemResponse is the envelope for endpoints returning a single record.
type ItemResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// JSONList writes a 200 list envelope. A nil slice is sent as [].
func JSONList[T any](w http.ResponseWriter, r *http.Request, items []T) {
	if items == nil {
		items = []T{}
	}
	WriteJSON(w, r, http.StatusOK, ListResponse[T]{
		Success: true,
		Count:   len(items),
		Data:    items,
	})
}

// JSONItem writes a 200 single-record envelope.
func JSONItem[T any](w http.ResponseWriter, r *http.Request, item T) {
	WriteJSON(w, r, http.StatusOK, ItemResponse[T]{Success: true, Data: item})
}

// JSONError writes {success:false,error:message} with the given status.
func JSONError(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteJSON(w, r, status, ErrorResponse{Success: false, Error: message})
}
