package httpserver

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/index.html
var chatPageHTML []byte

// chatPage serves the bundled single-page chat UI.
func (srv *HTTPServer) chatPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", chatPageHTML)
}
