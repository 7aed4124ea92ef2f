package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// indexHTML is the landing page. The record UI itself lives in the static
// assets; this shell only needs to load them.
const indexHTML = `<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="UTF-8">
  <title>마당 마작 기록실</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <div class="top-bar">
    <h1>마당 마작 기록실</h1>
    <div class="view-switch">
      <a href="/import" class="view-switch-btn">CSV 업로드</a>
      <a href="/export" class="view-switch-btn">CSV 다운로드</a>
    </div>
  </div>
  <div id="app" class="main-layout"></div>
  <script src="/static/script.js"></script>
</body>
</html>
`

// PagesHandler serves the presentational HTML pages
type PagesHandler struct{}

// NewPagesHandler creates a new pages handler
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Index renders the main page
func (h *PagesHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
