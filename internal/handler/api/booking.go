package api

import (
	"net/http"
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	reqdto "peer-tutor-scheduler/internal/handler/dto/request"
	resdto "peer-tutor-scheduler/internal/handler/dto/response"
	"peer-tutor-scheduler/internal/handler/httperr"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/usecase/commands"
	"peer-tutor-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	coord commands.Coordinator
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	loc   *time.Location
}

func NewBookingHandler(
	coord commands.Coordinator,
	cmds commands.BookingCommands,
	q queries.BookingQueries,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{coord: coord, cmds: cmds, q: q, loc: loc}
}

// @Summary Book a slot
// @Description Consume a tutor's slot and create a pending booking for the caller
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookDirectlyRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) BookDirectly(c *gin.Context) {
	studentID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.BookDirectlyRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.coord.BookDirectly(c.Request.Context(), studentID, req.SlotID, req.ToDetails())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCreated(c, b)
}

// @Summary Record a booking without a slot
// @Description Create a pending booking, or backfill a completed past session
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Manual booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/manual [post]
func (h *BookingHandler) CreateManual(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	draft := req.ToDraft(actor)
	if actor != draft.StudentID && actor != draft.TutorID {
		httperr.Abort(c, errs.Mark(errs.New("caller must be a participant of the booking"), errs.ErrForbidden))
		return
	}

	b, err := h.cmds.Create(c.Request.Context(), draft)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCreated(c, b)
}

// respondCreated renders the booking the command returned; it is never read back.
func (h *BookingHandler) respondCreated(c *gin.Context, b *booking.Booking) {
	view := queries.NewBookingView(b, h.loc)
	c.Header("Location", "/api/bookings/"+b.ID())
	c.JSON(http.StatusCreated, resdto.FromBookingView(&view))
}

// @Summary List the caller's bookings
// @Description Bookings where the caller is the student (default) or the tutor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param as query string false "student or tutor"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var (
		views []queries.BookingView
		err   error
	)
	switch c.DefaultQuery("as", "student") {
	case "student":
		views, err = h.q.ListByStudent(c.Request.Context(), actor)
	case "tutor":
		views, err = h.q.ListByTutor(c.Request.Context(), actor)
	default:
		err = errs.Validation("as", "must be student or tutor")
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Change booking status
// @Description Move a booking along pending, confirmed, completed, cancelled
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/status [patch]
func (h *BookingHandler) Transition(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if !bindJSON(c, &req) {
		return
	}
	to, err := req.ToStatus()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	b, err := h.cmds.Transition(c.Request.Context(), actor, c.Param("id"), to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view := queries.NewBookingView(b, h.loc)
	c.JSON(http.StatusOK, resdto.FromBookingView(&view))
}
