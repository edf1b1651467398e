package response

import "rental-admin-api/internal/usecase"

type MeResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

func FromIdentity(id usecase.Identity) MeResponse {
	return MeResponse{
		UID:   id.UID,
		Email: id.Email,
	}
}
