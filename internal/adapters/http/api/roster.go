// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/domain/model"
)

// Roster mutation actions addressed as /activities/{name}/{action}.
const (
	actionSignup     = "signup"
	actionUnregister = "unregister"
)

// RosterDependencies defines the interface for roster mutations.
type RosterDependencies interface {
	Signup(ctx context.Context, activity, email string) (model.Activity, error)
	Unregister(ctx context.Context, activity, email string) (model.Activity, error)
}

// RosterHandler handles signup and unregister requests.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleRoster handles POST /activities/{name}/signup and
// POST /activities/{name}/unregister requests. Activity names may contain
// spaces; r.URL.Path arrives percent-decoded, so no extra unescaping is
// needed here.
func (h *RosterHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	name, action, ok := splitRosterPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, ErrMissingEmail)
		return
	}

	switch action {
	case actionSignup:
		if _, err := h.deps.Signup(r.Context(), name, email); err != nil {
			writeError(w, statusFromErr(err), err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, name),
		})
	case actionUnregister:
		if _, err := h.deps.Unregister(r.Context(), name, email); err != nil {
			writeError(w, statusFromErr(err), err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", email, name),
		})
	default:
		http.NotFound(w, r)
	}
}

// splitRosterPath extracts the activity name and action from a path of the
// form /activities/{name}/{action}. The action is the final segment; the
// name is everything in between and must be non-empty.
func splitRosterPath(path string) (name, action string, ok bool) {
	rest := strings.TrimPrefix(path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}
