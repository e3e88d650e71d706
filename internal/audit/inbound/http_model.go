package inbound

import (
	"time"

	"github.com/chrono-hq/chrono-auth/internal/audit/entity"
)

type ActivityResponse struct {
	ID        int64  `json:"id,string"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	CreatedAt string `json:"created_at"`
}

func newActivityResponse(act entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        act.ID,
		Username:  act.Username,
		Action:    act.Action,
		Details:   act.Details,
		CreatedAt: act.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type ListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}
