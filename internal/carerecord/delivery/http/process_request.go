package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"care-companion/internal/carerecord"
	"care-companion/internal/model"
)

// scope extracts the user scope from the path.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	userID := c.Param("user_id")
	if userID == "" {
		return model.Scope{}, carerecord.ErrMissingUserID
	}
	return model.Scope{UserID: userID}, nil
}

// processListVitalsReq reads the vitals filter from query parameters.
func (h *handler) processListVitalsReq(c *gin.Context) (carerecord.ListVitalsInput, error) {
	var input carerecord.ListVitalsInput

	input.Type = model.VitalType(c.Query("type"))

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return input, err
		}
		input.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return input, err
		}
		input.To = to
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return input, err
		}
		input.Limit = limit
	}

	return input, nil
}
