package http

import (
	"github.com/gin-gonic/gin"

	"care-companion/pkg/response"
)

// SaveProfile godoc
// @Summary     Save care profile
// @Description Creates or replaces the care profile for a user.
// @Tags        CareRecord
// @Accept      json
// @Produce     json
// @Param       user_id path string         true "User ID"
// @Param       body    body saveProfileReq true "Profile"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/care/{user_id}/profile [PUT]
func (h *handler) SaveProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req saveProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.SaveProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveProfile: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newProfileResp(p))
}

// GetProfile godoc
// @Summary     Get care profile
// @Tags        CareRecord
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} profileResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/care/{user_id}/profile [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.GetProfile(ctx, sc)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newProfileResp(p))
}

// CreateMedication godoc
// @Summary     Add medication
// @Description Records a medication and schedules an intake reminder.
// @Tags        CareRecord
// @Accept      json
// @Produce     json
// @Param       user_id path string              true "User ID"
// @Param       body    body createMedicationReq true "Medication"
// @Success     200 {object} medicationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/care/{user_id}/medications [POST]
func (h *handler) CreateMedication(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req createMedicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.uc.CreateMedication(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateMedication: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMedicationResp(m))
}

// ListMedications godoc
// @Summary     List medications
// @Tags        CareRecord
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {array} medicationResp
// @Router      /api/v1/care/{user_id}/medications [GET]
func (h *handler) ListMedications(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	meds, err := h.uc.ListMedications(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMedications: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMedicationListResp(meds))
}

// DeleteMedication godoc
// @Summary     Delete medication
// @Tags        CareRecord
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       id      path string true "Medication ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/care/{user_id}/medications/{id} [DELETE]
func (h *handler) DeleteMedication(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteMedication(ctx, sc, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// LogVital godoc
// @Summary     Log vital reading
// @Description Records one vital-sign measurement such as blood pressure or glucose.
// @Tags        CareRecord
// @Accept      json
// @Produce     json
// @Param       user_id path string      true "User ID"
// @Param       body    body logVitalReq true "Reading"
// @Success     200 {object} vitalResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/care/{user_id}/vitals [POST]
func (h *handler) LogVital(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req logVitalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.LogVital(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LogVital: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newVitalResp(v))
}

// ListVitals godoc
// @Summary     List vital readings
// @Tags        CareRecord
// @Produce     json
// @Param       user_id path  string true  "User ID"
// @Param       type    query string false "Vital type"
// @Param       from    query string false "RFC3339 lower bound"
// @Param       to      query string false "RFC3339 upper bound"
// @Param       limit   query int    false "Max results"
// @Success     200 {array} vitalResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/care/{user_id}/vitals [GET]
func (h *handler) ListVitals(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processListVitalsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	vitals, err := h.uc.ListVitals(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListVitals: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newVitalListResp(vitals))
}

// CreateAppointment godoc
// @Summary     Schedule appointment
// @Description Stores a medical appointment with an optional reminder and calendar sync.
// @Tags        CareRecord
// @Accept      json
// @Produce     json
// @Param       user_id path string               true "User ID"
// @Param       body    body createAppointmentReq true "Appointment"
// @Success     200 {object} appointmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/care/{user_id}/appointments [POST]
func (h *handler) CreateAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req createAppointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.uc.CreateAppointment(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateAppointment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAppointmentResp(a))
}

// ListAppointments godoc
// @Summary     List appointments
// @Tags        CareRecord
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {array} appointmentResp
// @Router      /api/v1/care/{user_id}/appointments [GET]
func (h *handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	appts, err := h.uc.ListAppointments(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAppointments: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAppointmentListResp(appts))
}

// DeleteAppointment godoc
// @Summary     Cancel appointment
// @Description Removes an appointment, cancels its reminder and deletes any synced calendar event.
// @Tags        CareRecord
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       id      path string true "Appointment ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/care/{user_id}/appointments/{id} [DELETE]
func (h *handler) DeleteAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteAppointment(ctx, sc, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
