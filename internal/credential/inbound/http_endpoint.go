package inbound

import (
	"github.com/chrono-hq/chrono-auth/internal/credential/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for OTP credential management.
type HTTPEndpoint struct {
	uc uc
}

// List returns the caller's OTP credentials without secrets.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	resp, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	creds := make([]CredentialResponse, 0, len(resp.Credentials))
	for _, cred := range resp.Credentials {
		creds = append(creds, newCredentialResponse(cred))
	}

	return ListResponse{Credentials: creds}, nil
}

// Create registers a new OTP credential for the caller.
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Create(r.Context(), usecase.CreateInput{
		ServiceName: req.ServiceName,
		Secret:      req.Secret,
	})
	if err != nil {
		return nil, err
	}

	return CreateResponse{Credential: newCredentialResponse(resp.Credential)}, nil
}

// Delete removes an OTP credential.
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(r.Context(), usecase.DeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

// Code returns the current one-time code for a credential.
func (h *HTTPEndpoint) Code(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Code(r.Context(), usecase.CodeInput{ID: id})
	if err != nil {
		return nil, err
	}

	return CodeResponse{
		ServiceName: resp.ServiceName,
		Code:        resp.Code,
		ExpiresIn:   resp.ExpiresIn,
	}, nil
}
