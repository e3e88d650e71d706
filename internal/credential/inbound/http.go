package inbound

import (
	"context"

	"github.com/chrono-hq/chrono-auth/internal/credential/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
)

type uc interface {
	List(ctx context.Context) (*usecase.ListOutput, error)
	Create(ctx context.Context, in usecase.CreateInput) (*usecase.CreateOutput, error)
	Delete(ctx context.Context, in usecase.DeleteInput) error
	Code(ctx context.Context, in usecase.CodeInput) (*usecase.CodeOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// need authenticated
	r.GET("/api/v1/otp", end.List)
	r.POST("/api/v1/otp", end.Create)
	r.DELETE("/api/v1/otp/:id", end.Delete)
	r.GET("/api/v1/otp/:id/code", end.Code)
}
