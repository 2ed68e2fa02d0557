package errors

// Response is the unified envelope of every API response.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code     string `json:"code"`               // Business error code, e.g., "WRONG_PROVIDER"
	Field    string `json:"field,omitempty"`    // Offending input field for validation and duplicate errors
	Provider string `json:"provider,omitempty"` // Provider owning the account for WRONG_PROVIDER
	Details  string `json:"details,omitempty"`  // Detailed error information (4xx only)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"requestId"` // Request tracking ID
}

// NewErrorInfo renders an AppError, attaching the field or provider when the error carries one.
func NewErrorInfo(err AppError) *ErrorInfo {
	info := &ErrorInfo{
		Code:    err.ErrorCode(),
		Details: err.Details(),
	}

	switch e := err.(type) {
	case FieldError:
		info.Field = e.Field()
	case *WrongProviderError:
		info.Provider = e.Provider()
	}

	return info
}
