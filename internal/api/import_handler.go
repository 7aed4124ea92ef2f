package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madangclub/mahjong-rating/internal/services"
)

// importFormHTML is the upload page served on GET /import
const importFormHTML = `<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="UTF-8">
  <title>개인전 CSV 업로드</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <div class="top-bar">
    <h1>개인전 CSV 업로드</h1>
    <div class="view-switch">
      <a href="/" class="view-switch-btn">메인으로 돌아가기</a>
    </div>
  </div>
  <div class="main-layout">
    <div class="left-panel">
      <section class="games-panel">
        <h2>개인전 CSV 업로드</h2>
        <p class="hint-text">
          * /export 에서 받은 games.csv 나<br>
          * ID / 시간 / P1 이름 / P1 점수 / ... 형식의 파일 모두 인식합니다.
        </p>
        <form method="post" enctype="multipart/form-data">
          <p><input type="file" name="file" accept=".csv" required></p>
          <p><button type="submit">업로드</button></p>
        </form>
      </section>
    </div>
  </div>
</body>
</html>
`

// ImportHandler serves the upload form and ingests uploaded CSV files
type ImportHandler struct {
	importer services.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importer services.ImportService) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// UploadForm renders the CSV upload page
func (h *ImportHandler) UploadForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(importFormHTML))
}

// Upload accepts a multipart CSV file, imports its rows and redirects to
// the landing page. Failures are plain-text, scoped to this request.
func (h *ImportHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "파일이 없습니다.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.String(http.StatusBadRequest, "파일을 열 수 없습니다.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		c.String(http.StatusBadRequest, "파일을 읽을 수 없습니다.")
		return
	}

	if _, err := h.importer.Import(raw); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}
