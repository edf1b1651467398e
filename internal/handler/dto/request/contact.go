package request

import (
	"rental-admin-api/internal/usecase"
)

type SubmitContactRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

func (r SubmitContactRequest) ToParams() usecase.SubmitContactParams {
	return usecase.SubmitContactParams{
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Country:   r.Country,
		Phone:     r.Phone,
		Email:     r.Email,
		Message:   r.Message,
	}
}
