package http

import (
	"github.com/gin-gonic/gin"

	"care-companion/internal/assistant"
)

// processQueryReq binds and validates the assistant query request body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.UserID == "" {
		return req, assistant.ErrMissingUserID
	}
	return req, nil
}
