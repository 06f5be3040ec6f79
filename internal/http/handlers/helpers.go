package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/newsdesk/internal/constants"
	"github.com/newsdesk/internal/http/response"
	"github.com/newsdesk/internal/logger"
	"github.com/newsdesk/internal/service"
)

// requestLog 提供携带 request_id 的日志实例
func requestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// respondError 返回错误响应，并在有原始错误时记录日志
func respondError(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		requestLog(c).Errorw("handler_error",
			"code", code,
			"message", msg,
			"error", err,
		)
	}
	response.Error(c, code, msg)
}

// respondServiceError 将业务层错误翻译为 HTTP 响应
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	if verr, ok := service.AsValidationError(err); ok {
		response.ValidationFailed(c, verr.Fields)
		return
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, notFoundMsg)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid credentials")
	case errors.Is(err, service.ErrUserDisabled):
		response.Forbidden(c, "account disabled")
	case errors.Is(err, service.ErrMissingFile):
		response.BadRequest(c, "file is required")
	case errors.Is(err, service.ErrFileTooLarge):
		response.BadRequest(c, "file exceeds the maximum allowed size")
	case errors.Is(err, service.ErrUploadVerifyFailed),
		errors.Is(err, service.ErrStorageUnavailable):
		respondError(c, response.CodeInternal, "object storage request failed", err)
	default:
		respondError(c, response.CodeInternal, "internal server error", err)
	}
}

// parsePagination 解析并归一化分页参数
func (h *Handler) parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	return h.normalizePagination(page, pageSize)
}

func (h *Handler) normalizePagination(page, pageSize int) (int, int) {
	defaultSize := h.Config.Pagination.DefaultPageSize
	maxSize := h.Config.Pagination.MaxPageSize
	if defaultSize <= 0 {
		defaultSize = constants.DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = constants.MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}
