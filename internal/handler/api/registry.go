package api

import (
	"net/http"

	"meeting-room-approval/internal/domain/registry"
	reqdto "meeting-room-approval/internal/handler/dto/request"
	resdto "meeting-room-approval/internal/handler/dto/response"
	"meeting-room-approval/internal/handler/httperr"
	"meeting-room-approval/internal/usecase/commands"
	"meeting-room-approval/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves rooms, facilities and departments. Facility and
// department routes share one set of handlers bound to a registry.Kind.
type RegistryHandler struct {
	cmds commands.RegistryCommands
	q    queries.RegistryQueries
}

func NewRegistryHandler(cmds commands.RegistryCommands, q queries.RegistryQueries) *RegistryHandler {
	return &RegistryHandler{cmds: cmds, q: q}
}

// @Summary List active rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RegistryHandler) ListRooms(c *gin.Context) {
	views, err := h.q.ListRooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRoomList(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, res)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RegistryHandler) GetRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondRoom(c, http.StatusOK, id)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *RegistryHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateRoom(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRoom(c, http.StatusCreated, id)
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RegistryHandler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateRoom(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRoom(c, http.StatusOK, id)
}

func (h *RegistryHandler) respondRoom(c *gin.Context, status int, id int64) {
	view, err := h.q.GetRoom(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, status, res)
}

// @Summary List active entries
// @Tags facilities, departments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EntryResponse
// @Router /facilities [get]
// @Router /departments [get]
func (h *RegistryHandler) ListEntries(kind registry.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := h.q.ListEntries(c.Request.Context(), kind)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		res, err := resdto.FromEntryList(views)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		httperr.OK(c, http.StatusOK, res)
	}
}

// @Summary Get entry
// @Tags facilities, departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} resdto.EntryResponse
// @Failure 404 {object} httperr.Response
// @Router /facilities/{id} [get]
// @Router /departments/{id} [get]
func (h *RegistryHandler) GetEntry(kind registry.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		h.respondEntry(c, kind, http.StatusOK, id)
	}
}

// @Summary Create entry
// @Tags facilities, departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEntryRequest true "Entry"
// @Success 201 {object} resdto.EntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /facilities [post]
// @Router /departments [post]
func (h *RegistryHandler) CreateEntry(kind registry.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reqdto.CreateEntryRequest
		if !bindJSON(c, &req) {
			return
		}
		id, err := h.cmds.CreateEntry(c.Request.Context(), kind, req.ToInput())
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		h.respondEntry(c, kind, http.StatusCreated, id)
	}
}

// @Summary Update entry
// @Tags facilities, departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param request body reqdto.UpdateEntryRequest true "Fields to change"
// @Success 200 {object} resdto.EntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /facilities/{id} [patch]
// @Router /departments/{id} [patch]
func (h *RegistryHandler) UpdateEntry(kind registry.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req reqdto.UpdateEntryRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := h.cmds.UpdateEntry(c.Request.Context(), kind, id, req.ToInput()); err != nil {
			httperr.Abort(c, err)
			return
		}
		h.respondEntry(c, kind, http.StatusOK, id)
	}
}

func (h *RegistryHandler) respondEntry(c *gin.Context, kind registry.Kind, status int, id int64) {
	view, err := h.q.GetEntry(c.Request.Context(), kind, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromEntryView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, status, res)
}

// @Summary Deactivate
// @Description Soft delete; the record stays but leaves every active list.
// @Tags rooms, facilities, departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
// @Router /facilities/{id} [delete]
// @Router /departments/{id} [delete]
func (h *RegistryHandler) Deactivate(kind registry.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := h.cmds.Deactivate(c.Request.Context(), kind, id); err != nil {
			httperr.Abort(c, err)
			return
		}
		httperr.OK(c, http.StatusOK, nil)
	}
}

// @Summary Bulk deactivate
// @Tags rooms, facilities, departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkDeleteRequest true "IDs"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/bulk-delete [post]
// @Router /facilities/bulk-delete [post]
// @Router /departments/bulk-delete [post]
func (h *RegistryHandler) BulkDeactivate(kind registry.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reqdto.BulkDeleteRequest
		if !bindJSON(c, &req) {
			return
		}
		n, err := h.cmds.DeactivateMany(c.Request.Context(), kind, req.IDs)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		httperr.OK(c, http.StatusOK, resdto.BulkDeleteResponse{Deactivated: n})
	}
}

// @Summary Form options
// @Description Active rooms, facilities and departments in one response.
// @Tags options
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OptionsResponse
// @Router /options [get]
func (h *RegistryHandler) Options(c *gin.Context) {
	view, err := h.q.Options(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOptionsView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, res)
}
