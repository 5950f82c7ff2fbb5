package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stackql-cloud-intelligence/internal/chat"
	"stackql-cloud-intelligence/pkg/response"
)

var errEmptySessionID = errors.New("session_id is required")

// respondError translates chat domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err, nil)
	case errors.Is(err, chat.ErrCompletionFailed):
		response.BadGateway(c, err)
	default:
		response.InternalError(c, err)
	}
}
