package requests

type SendNotification struct {
	UserID     string `json:"userId" validate:"required"`
	Message    string `json:"message" validate:"required"`
	Type       string `json:"type"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high"`
	FromUserID string `json:"fromUserId"`
}
