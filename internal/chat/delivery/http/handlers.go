package http

import (
	"github.com/gin-gonic/gin"

	"stackql-cloud-intelligence/internal/model"
	"stackql-cloud-intelligence/pkg/response"
)

// Chat godoc
// @Summary     Ask a question about your cloud infrastructure
// @Description Sends one chat message through the StackQL agent and returns the answer. Omit session_id to start a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway - LLM unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{SessionID: req.SessionID, ClientIP: c.ClientIP()}
	output, err := h.uc.ProcessTurn(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Examples godoc
// @Summary     List example questions
// @Description Returns curated starter questions for the chat UI.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} examplesResp
// @Router      /api/v1/chat/examples [GET]
func (h *handler) Examples(c *gin.Context) {
	response.OK(c, h.newExamplesResp(h.uc.Examples()))
}

// Status godoc
// @Summary     Report dependency status
// @Description Probes the StackQL MCP server and lists configured LLM providers.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Status(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newStatusResp(output))
}

// Reset godoc
// @Summary     Clear a conversation
// @Description Discards the conversation history of a session.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/{session_id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")
	if sessionID == "" {
		response.Error(c, errEmptySessionID, nil)
		return
	}

	if err := h.uc.Reset(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
