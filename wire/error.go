package wire

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is the externally visible error contract returned to API callers.
// It is self-contained: serializing it requires no access to the decoder
// or to internal error state.
type Error struct {
	StatusCode int    `json:"status_code"`       // HTTP status, must be in [400,599]
	ErrorCode  string `json:"error_code"`        // stable machine token, safe for programmatic branching
	Message    string `json:"message"`           // human-readable, never raw decoder text
	Details    any    `json:"details,omitempty"` // structured debugging aid, optional
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

// Render writes the record as a JSON response with its own status code.
// It satisfies the handler package's Response interface.
func (e Error) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.StatusCode)
	return json.NewEncoder(w).Encode(e)
}
