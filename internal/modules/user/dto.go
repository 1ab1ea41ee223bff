package user

import "starblog/internal/domain"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

var registerMessages = map[string]string{
	"is_active": "You need to specify if user is active or not",
}

func (r RegisterRequest) toUser() *domain.User {
	return &domain.User{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		IsActive: *r.IsActive,
	}
}
