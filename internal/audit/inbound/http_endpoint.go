package inbound

import (
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the activity trail.
type HTTPEndpoint struct {
	uc uc
}

// List returns the caller's activity entries, or everything for admins.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	resp, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	acts := make([]ActivityResponse, 0, len(resp.Activities))
	for _, act := range resp.Activities {
		acts = append(acts, newActivityResponse(act))
	}

	return ListResponse{Activities: acts}, nil
}
