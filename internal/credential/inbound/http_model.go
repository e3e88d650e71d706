package inbound

import (
	"time"

	"github.com/chrono-hq/chrono-auth/internal/credential/entity"
)

type CredentialResponse struct {
	ID          int64  `json:"id,string"`
	Username    string `json:"username"`
	ServiceName string `json:"service_name"`
	CreatedAt   string `json:"created_at"`
}

func newCredentialResponse(cred entity.Credential) CredentialResponse {
	return CredentialResponse{
		ID:          cred.ID,
		Username:    cred.Username,
		ServiceName: cred.ServiceName,
		CreatedAt:   cred.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type ListResponse struct {
	Credentials []CredentialResponse `json:"credentials"`
}

type CreateRequest struct {
	ServiceName string `json:"service_name"`
	Secret      string `json:"secret"`
}

type CreateResponse struct {
	Credential CredentialResponse `json:"credential"`
}

func (CreateResponse) Message() string {
	return "credential created"
}

type CodeResponse struct {
	ServiceName string `json:"service_name"`
	Code        string `json:"code"`
	ExpiresIn   int64  `json:"expires_in"`
}
