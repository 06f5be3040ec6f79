package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/newsdesk/internal/http/response"
	"github.com/newsdesk/internal/service"
)

// Upload 上传媒体文件到对象存储，返回公开访问 URL
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondServiceError(c, service.ErrMissingFile, "")
		return
	}

	result, err := h.UploadService.SaveFile(c.Request.Context(), file)
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	response.Created(c, result)
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
