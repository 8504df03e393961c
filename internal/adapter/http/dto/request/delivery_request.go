package request

import (
	"strings"

	"vehicle_acquisition/internal/domain/entities"
)

type ActingUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type DeliverRequest struct {
	DocumentURL string            `json:"document_url"`
	ActingUser  ActingUserRequest `json:"acting_user"`
}

func (r DeliverRequest) ResolveUser() entities.ActingUser {
	return entities.ActingUser{
		ID:    strings.TrimSpace(r.ActingUser.ID),
		Name:  strings.TrimSpace(r.ActingUser.Name),
		Email: strings.TrimSpace(r.ActingUser.Email),
		Role:  strings.TrimSpace(r.ActingUser.Role),
	}
}
