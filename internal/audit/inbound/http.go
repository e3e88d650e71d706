package inbound

import (
	"context"

	"github.com/chrono-hq/chrono-auth/internal/audit/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
)

type uc interface {
	List(ctx context.Context) (*usecase.ListOutput, error)
	Record(ctx context.Context, in usecase.RecordInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// need authenticated
	r.GET("/api/v1/logs", end.List)
}
