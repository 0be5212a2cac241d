package api

import (
	"net/http"
	"time"

	reqdto "peer-tutor-scheduler/internal/handler/dto/request"
	resdto "peer-tutor-scheduler/internal/handler/dto/response"
	"peer-tutor-scheduler/internal/handler/httperr"
	"peer-tutor-scheduler/internal/usecase/commands"
	"peer-tutor-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HelpRequestHandler struct {
	cmds  commands.HelpRequestCommands
	coord commands.Coordinator
	q     queries.HelpRequestQueries
	loc   *time.Location
}

func NewHelpRequestHandler(
	cmds commands.HelpRequestCommands,
	coord commands.Coordinator,
	q queries.HelpRequestQueries,
	loc *time.Location,
) *HelpRequestHandler {
	return &HelpRequestHandler{cmds: cmds, coord: coord, q: q, loc: loc}
}

// @Summary Post a help request
// @Tags help-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PostHelpRequestRequest true "Help request"
// @Success 201 {object} resdto.HelpRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /api/help-requests [post]
func (h *HelpRequestHandler) Post(c *gin.Context) {
	studentID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.PostHelpRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.cmds.Post(c.Request.Context(), req.ToDraft(studentID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view := queries.NewHelpRequestView(r)
	c.Header("Location", "/api/help-requests/"+r.ID())
	c.JSON(http.StatusCreated, resdto.FromHelpRequestView(&view))
}

// @Summary Open help requests
// @Description Unexpired open requests, most urgent and oldest first
// @Tags help-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HelpRequestListResponse
// @Router /api/help-requests [get]
func (h *HelpRequestHandler) ListOpen(c *gin.Context) {
	views, err := h.q.ListOpen(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHelpRequestViews(views))
}

// @Summary The caller's help requests
// @Tags help-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HelpRequestListResponse
// @Router /api/help-requests/mine [get]
func (h *HelpRequestHandler) ListMine(c *gin.Context) {
	studentID, ok := actorID(c)
	if !ok {
		return
	}
	views, err := h.q.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHelpRequestViews(views))
}

// @Summary Get a help request
// @Tags help-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Help request ID"
// @Success 200 {object} resdto.HelpRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /api/help-requests/{id} [get]
func (h *HelpRequestHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHelpRequestView(view))
}

// @Summary Claim a help request
// @Description Consume one of the caller's slots and book the session for the requesting student
// @Tags help-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Help request ID"
// @Param request body reqdto.ClaimRequest true "Slot to offer"
// @Success 201 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/help-requests/{id}/claim [post]
func (h *HelpRequestHandler) Claim(c *gin.Context) {
	tutorID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.ClaimRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.coord.ClaimHelpRequest(c.Request.Context(), c.Param("id"), tutorID, req.SlotID, req.Notes)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	requestView := queries.NewHelpRequestView(res.Request)
	bookingView := queries.NewBookingView(res.Booking, h.loc)
	c.JSON(http.StatusCreated, resdto.ClaimResponse{
		Request: resdto.FromHelpRequestView(&requestView),
		Booking: resdto.FromBookingView(&bookingView),
	})
}

// @Summary Resolve a claimed help request
// @Tags help-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Help request ID"
// @Success 200 {object} resdto.HelpRequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/help-requests/{id}/resolve [post]
func (h *HelpRequestHandler) Resolve(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	r, err := h.cmds.Resolve(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view := queries.NewHelpRequestView(r)
	c.JSON(http.StatusOK, resdto.FromHelpRequestView(&view))
}

// @Summary Withdraw an open help request
// @Description Only the student who posted it may withdraw, and only before a tutor claims it
// @Tags help-requests
// @Security BearerAuth
// @Param id path string true "Help request ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/help-requests/{id} [delete]
func (h *HelpRequestHandler) Withdraw(c *gin.Context) {
	studentID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.cmds.Withdraw(c.Request.Context(), c.Param("id"), studentID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
