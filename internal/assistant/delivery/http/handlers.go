package http

import (
	"github.com/gin-gonic/gin"

	"care-companion/internal/model"
	"care-companion/pkg/response"
)

// Query godoc
// @Summary     Ask the assistant
// @Description Routes a natural-language query on-device, to the cloud, or through the hybrid pipeline and returns the answer with routing metadata.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Query"
// @Success     200  {object} queryResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newQueryResp(output))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the recent conversation turns for a user.
// @Tags        Assistant
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/history/{user_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")

	output, err := h.uc.History(ctx, model.Scope{UserID: userID})
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(output))
}
