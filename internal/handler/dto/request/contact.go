package request

import (
	"salon-booking-api/internal/usecase"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) ToParams() usecase.ContactMessageParams {
	return usecase.ContactMessageParams{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}
