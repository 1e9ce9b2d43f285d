package handler

import "github.com/msomdec/jobtracker/internal/domain"

// sessionDTO is the JSON shape of the signed-in session.
type sessionDTO struct {
	IsAuthenticated bool                `json:"isAuthenticated"`
	User            *domain.UserProfile `json:"user"`
	Role            domain.Role         `json:"role,omitempty"`
}

func toSessionDTO(s domain.Session) sessionDTO {
	return sessionDTO{IsAuthenticated: s.IsAuthenticated, User: s.User, Role: s.Role}
}

type demoRequest struct {
	Role domain.Role `json:"role"`
}

type themeRequest struct {
	Theme domain.Theme `json:"theme"`
}

type themeDTO struct {
	Theme domain.Theme `json:"theme"`
}

type previewDTO struct {
	Count int `json:"count"`
}
