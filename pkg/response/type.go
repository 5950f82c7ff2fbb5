package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Response constants.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 1
	NotFoundErrorCode        = 404
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500
	BadGatewayErrorCode      = 502
)
