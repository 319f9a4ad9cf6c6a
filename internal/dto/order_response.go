package dto

type OrderResponse struct {
	ID       string   `json:"id"`
	UserID   string   `json:"user_id"`
	Products []string `json:"products"`
}
