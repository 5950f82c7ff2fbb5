package stackql

import "fmt"

// TransportError means the MCP server could not be reached at all:
// connection refused, DNS failure, or a timed-out request.
type TransportError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("stackql: request to MCP server at %s timed out: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("stackql: cannot connect to MCP server at %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError means the MCP server was reached but reported a failure,
// either as a non-2xx HTTP status or as a JSON-RPC error object.
type RemoteError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("stackql: HTTP error %d from MCP server: %s", e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("stackql: MCP error %d: %s", e.Code, e.Message)
}

// DecodeError means a response arrived but could not be parsed into the
// expected JSON-RPC result structure.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stackql: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("stackql: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
