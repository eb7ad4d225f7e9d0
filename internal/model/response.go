package model

// Response is the envelope written by every API handler.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListResponse builds a successful envelope for a collection.
func ListResponse[T any](message string, items []T) Response {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	return Response{
		Success: true,
		Message: message,
		Data:    items,
		Count:   &count,
	}
}
