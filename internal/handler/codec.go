package handler

import (
	"errors"
	"io"
	"net/http"

	"huffpack/internal/codec"
	"huffpack/internal/service"

	"github.com/gin-gonic/gin"
)

type CodecHandler struct {
	svc *service.CodecService
}

func NewCodecHandler(s *service.CodecService) *CodecHandler {
	return &CodecHandler{svc: s}
}

// Compress reads the raw request body and responds with the container.
func (h *CodecHandler) Compress(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.svc.Compress(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}

// Decompress reads a container from the request body and responds with the
// original bytes.
func (h *CodecHandler) Decompress(c *gin.Context) {
	container, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.svc.Decompress(container)
	if err != nil {
		switch {
		case errors.Is(err, codec.ErrInvalidFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "not a huffpack container"})
		case errors.Is(err, codec.ErrTruncatedHeader), errors.Is(err, codec.ErrTruncatedBody):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}
