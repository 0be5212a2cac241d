package api

import (
	"net/http"

	reqdto "peer-tutor-scheduler/internal/handler/dto/request"
	resdto "peer-tutor-scheduler/internal/handler/dto/response"
	"peer-tutor-scheduler/internal/handler/httperr"
	"peer-tutor-scheduler/internal/usecase/commands"
	"peer-tutor-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary Publish weekly availability
// @Description Replace the caller's live slots with the given week
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishSlotsRequest true "Slots to publish"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/slots [put]
func (h *SlotHandler) Publish(c *gin.Context) {
	tutorID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.PublishSlotsRequest
	if !bindJSON(c, &req) {
		return
	}

	published, err := h.cmds.Publish(c.Request.Context(), tutorID, req.ToDrafts())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views := make([]queries.SlotView, 0, len(published))
	for _, s := range published {
		views = append(views, queries.NewSlotView(s))
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Delete a slot
// @Description Remove one of the caller's live slots
// @Tags slots
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	tutorID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), tutorID, c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List a tutor's slots
// @Description Live slots ordered by date and start time
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tutor ID"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/tutors/{id}/slots [get]
func (h *SlotHandler) ListByTutor(c *gin.Context) {
	views, err := h.q.ListByTutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
