package dto

type MarkStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=created cancelled"`
}
