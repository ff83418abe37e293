package pkg

import "time"

// TimeFormat is the wire format for timestamps.
const TimeFormat = "2006-01-02T15:04:05Z"

// Response represents a standard API response.
type Response struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// NewResponse creates a new Response with the given code, data, and message.
func NewResponse(code int, data interface{}, message string) Response {
	return Response{
		Code:    code,
		Data:    data,
		Message: message,
	}
}

// Notice is the {code, title, message, timestamp} body used for errors and
// delete confirmations.
type Notice struct {
	Code      int    `json:"code"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewNotice builds a Notice stamped with at, rendered in UTC.
func NewNotice(code int, title, message string, at time.Time) Notice {
	return Notice{
		Code:      code,
		Title:     title,
		Message:   message,
		Timestamp: at.UTC().Format(TimeFormat),
	}
}

// Notice titles.
const (
	TitleNotFound          = "Object not found"
	TitleAlreadyRegistered = "Object already registered"
	TitleInvalidField      = "Invalid field"
	TitleFieldMismatch     = "Field mismatch"
	TitleInternal          = "Internal error"
)
