package model

// Тексты ошибок, возвращаемые клиенту в поле error
const (
	ErrMsgMissingURL       = "Missing 'url' in request body"
	ErrMsgInvalidURL       = "Invalid URL format"
	ErrMsgInvalidJSON      = "Invalid JSON in request body"
	ErrMsgNotFound         = "Short URL not found"
	ErrMsgRouteNotFound    = "Not found"
	ErrMsgMethodNotAllowed = "Method not allowed"
	ErrMsgInternalError    = "Internal server error"
	ErrMsgBodyTooLarge     = "Request body too large"
)

// ErrorResponse тело любого ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
