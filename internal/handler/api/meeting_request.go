package api

import (
	"net/http"

	reqdto "meeting-room-approval/internal/handler/dto/request"
	resdto "meeting-room-approval/internal/handler/dto/response"
	"meeting-room-approval/internal/handler/httperr"
	"meeting-room-approval/internal/usecase/commands"
	"meeting-room-approval/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MeetingRequestHandler struct {
	cmds commands.MeetingRequestCommands
	q    queries.MeetingRequestQueries
}

func NewMeetingRequestHandler(cmds commands.MeetingRequestCommands, q queries.MeetingRequestQueries) *MeetingRequestHandler {
	return &MeetingRequestHandler{cmds: cmds, q: q}
}

// @Summary List meeting requests
// @Description Newest first, each with its history. Optionally filtered by derived status.
// @Tags meeting-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} resdto.MeetingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /meeting-requests [get]
func (h *MeetingRequestHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, views)
}

// @Summary Submit a meeting request
// @Description Creates the request with both approvals pending and records the submission in its history.
// @Tags meeting-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMeetingRequestRequest true "Booking form"
// @Success 201 {object} resdto.MeetingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /meeting-requests [post]
func (h *MeetingRequestHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateMeetingRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load meeting request", nil)
		return
	}
	httperr.OK(c, http.StatusCreated, view)
}

// @Summary Room availability
// @Description Without start/end it lists the approved ranges of the day; with them it also reports whether that span overlaps one.
// @Tags meeting-requests
// @Produce json
// @Security BearerAuth
// @Param room query string true "Room name"
// @Param date query string true "YYYY-MM-DD"
// @Param start query string false "HH:MM"
// @Param end query string false "HH:MM"
// @Param excludeId query int false "Request being edited"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /meeting-requests/availability [get]
func (h *MeetingRequestHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	view, err := h.q.Availability(c.Request.Context(), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, view)
}

// @Summary Get meeting request
// @Tags meeting-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting request ID"
// @Success 200 {object} resdto.MeetingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /meeting-requests/{id} [get]
func (h *MeetingRequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, view)
}

// @Summary Meeting request history
// @Description Oldest first. A missing request has an empty history.
// @Tags meeting-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting request ID"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /meeting-requests/{id}/history [get]
func (h *MeetingRequestHandler) History(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entries, err := h.q.History(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, resdto.HistoryResponse{MeetingRequestID: id, History: entries})
}

// @Summary Approve or reject
// @Description Head GA decides first, then Head OS. Final approval re-checks the room for overlaps.
// @Tags meeting-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting request ID"
// @Param request body reqdto.ApprovalRequest true "Approval action"
// @Success 200 {object} resdto.MeetingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /meeting-requests/{id}/approval [patch]
func (h *MeetingRequestHandler) ApplyApproval(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.ApprovalRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.ApplyApproval(c.Request.Context(), id, req.ToInput(), actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWith(c, id)
}

// @Summary Edit meeting request
// @Description Changes descriptive fields only. Approval fields are untouched.
// @Tags meeting-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting request ID"
// @Param request body reqdto.UpdateMeetingRequestRequest true "Fields to change"
// @Success 200 {object} resdto.MeetingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /meeting-requests/{id} [patch]
func (h *MeetingRequestHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateMeetingRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWith(c, id)
}

// @Summary Delete meeting request
// @Description Removes the request together with its history.
// @Tags meeting-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting request ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /meeting-requests/{id} [delete]
func (h *MeetingRequestHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, nil)
}

func (h *MeetingRequestHandler) respondWith(c *gin.Context, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load meeting request", nil)
		return
	}
	httperr.OK(c, http.StatusOK, view)
}
