package dto

import "time"

type CreateSessionRequest struct {
	UserId *string `json:"user_id,omitempty" validate:"omitempty,max=64"`
	Mode   string  `json:"mode" validate:"required,oneof=resume interview jobs"`
	Title  *string `json:"title,omitempty"`
}

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
}

type SessionItem struct {
	Id        string     `json:"id"`
	UserId    *string    `json:"user_id,omitempty"`
	Mode      string     `json:"mode"`
	Title     *string    `json:"title,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListSessionsResponse struct {
	Items []SessionItem `json:"items"`
}
