package responses

// Error error body as sent by the content api on non success replies
type Error struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// Text the human readable part of the error body, message is preferred
func (e *Error) Text() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Err
}
