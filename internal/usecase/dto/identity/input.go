package identitydto

type LoginInput struct {
	TelegramID int64
	Username   string
	Email      string
	// AuthData holds the raw key/value pairs received from the Telegram
	// widget, including the "hash" field, for optional HMAC verification.
	AuthData map[string]string
}
