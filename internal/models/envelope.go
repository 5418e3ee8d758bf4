package models

// MessageEnvelope is the top-level message structure exchanged with the
// automation bridge
type MessageEnvelope struct {
	Type     string    `json:"type"` // "request" or "response"
	Request  *Request  `json:"request,omitempty"`
	Response *Response `json:"response,omitempty"`
}

// Request represents an RPC request
type Request struct {
	ID     string                 `json:"id"`
	Method string                 `json:"method"`
	Params map[string]interface{} `json:"params"`
}

// Response represents an RPC response
type Response struct {
	ID     string                 `json:"id"`
	Result map[string]interface{} `json:"result,omitempty"`
	Error  *ErrorInfo             `json:"error,omitempty"`
}

// ErrorInfo represents an error in a response
type ErrorInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewRequest creates a new request envelope
func NewRequest(id, method string, params map[string]interface{}) *MessageEnvelope {
	return &MessageEnvelope{
		Type: "request",
		Request: &Request{
			ID:     id,
			Method: method,
			Params: params,
		},
	}
}

// IsError returns true if the response contains an error
func (r *Response) IsError() bool {
	return r.Error != nil
}

// GetError returns the error message if present
func (r *Response) GetError() string {
	if r.Error != nil {
		return r.Error.Message
	}
	return ""
}
