// handlers/forms.go - Request payload parsing helpers for DRY
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// updatePayload is the body of every PATCH: one field, one value. Operating
// costs address a month slot instead of a named field; weekly sales name the
// product line as well.
type updatePayload struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Month   *int   `json:"month,omitempty"`
	Product string `json:"product,omitempty"`
}

func parseUpdate(r *http.Request) (*updatePayload, error) {
	var p updatePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode update: %w", err)
	}
	return &p, nil
}

// addPayload carries the optional parent reference for care tasks and
// propagation projects.
type addPayload struct {
	PlantID string `json:"plantId"`
}

func parseAdd(r *http.Request) addPayload {
	var p addPayload
	// An empty or absent body just means no reference; not an error.
	_ = json.NewDecoder(r.Body).Decode(&p)
	return p
}

// urlIndex extracts a positional index from the route.
func urlIndex(r *http.Request) (int, error) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, fmt.Errorf("invalid index: %w", err)
	}
	return idx, nil
}

// urlID extracts a record id from the route.
func urlID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
