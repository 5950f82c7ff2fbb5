package model

// Scope identifies the caller of a request. Sessions are in-memory only;
// the session ID is the sole identity the service tracks.
type Scope struct {
	SessionID string
	ClientIP  string
}
