//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/domain/user"
	"peer-tutor-scheduler/internal/handler/api"
	resdto "peer-tutor-scheduler/internal/handler/dto/response"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/usecase/commands"
	"peer-tutor-scheduler/internal/usecase/queries"
	"peer-tutor-scheduler/tests/common/builder"
	"peer-tutor-scheduler/tests/common/httptest"
	"peer-tutor-scheduler/tests/common/testutil"
	commandsmock "peer-tutor-scheduler/tests/mock/commands"
	queriesmock "peer-tutor-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HelpRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHelpRequestCommands
	mockCoord    *commandsmock.MockCoordinator
	mockQueries  *queriesmock.MockHelpRequestQueries
	handler      *api.HelpRequestHandler
}

func (s *HelpRequestHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHelpRequestCommands(s.mockCtrl)
	s.mockCoord = commandsmock.NewMockCoordinator(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHelpRequestQueries(s.mockCtrl)
	s.handler = api.NewHelpRequestHandler(s.mockCommands, s.mockCoord, s.mockQueries, time.UTC)

	s.router.POST("/help-requests", fakeAuth, s.handler.Post)
	s.router.GET("/help-requests", fakeAuth, s.handler.ListOpen)
	s.router.GET("/help-requests/mine", fakeAuth, s.handler.ListMine)
	s.router.GET("/help-requests/:id", fakeAuth, s.handler.Get)
	s.router.DELETE("/help-requests/:id", fakeAuth, s.handler.Withdraw)
	s.router.POST("/help-requests/:id/claim", fakeAuth, s.handler.Claim)
	s.router.POST("/help-requests/:id/resolve", fakeAuth, s.handler.Resolve)
}

func (s *HelpRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHelpRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HelpRequestHandlerTestSuite))
}

func helpRequestView(r *helprequest.HelpRequest) *queries.HelpRequestView {
	v := queries.NewHelpRequestView(r)
	return &v
}

// ================================================================================
// TestPost
// ================================================================================

func (s *HelpRequestHandlerTestSuite) TestPost() {
	url := "/help-requests"
	student := token("student-1", user.RoleStudent)
	posted := builder.NewHelpRequestBuilder().MustBuildDomain()
	reqBody := builder.NewHelpRequestBuilder().BuildRequestDTO()

	s.Run("success: returns 201 Created with an open request", func() {
		s.mockCommands.EXPECT().Post(gomock.Any(), helprequest.Draft{
			StudentID:   "student-1",
			Subject:     reqBody.Subject,
			Topic:       reqBody.Topic,
			Description: reqBody.Description,
			Urgency:     reqBody.Urgency,
		}).Return(posted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, student)

		var body resdto.HelpRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(posted.ID(), body.RequestID)
		s.Equal("open", body.Status)
		s.Nil(body.ClaimedBy)
		httptest.AssertLocation(s.T(), rec, "/api/help-requests/"+posted.ID())
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing subject", mutate: testutil.Field("subject", nil)},
			{name: "missing topic", mutate: testutil.Field("topic", nil)},
			{name: "missing urgency", mutate: testutil.Field("urgency", nil)},
			{name: "unknown preferred format", mutate: testutil.Field("preferredFormat", "Carrier pigeon")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, student)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: unknown urgency is rejected by the domain", func() {
		s.mockCommands.EXPECT().Post(gomock.Any(), gomock.Any()).
			Return(nil, errs.Validation("urgency", "must be one of low, medium, high")).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("urgency", "critical"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, student)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "urgency")
	})
}

// ================================================================================
// TestLists
// ================================================================================

func (s *HelpRequestHandlerTestSuite) TestLists() {
	open := helpRequestView(builder.NewHelpRequestBuilder().MustBuildDomain())

	s.Run("success: open board", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any()).Return([]queries.HelpRequestView{*open}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/help-requests", nil, token("tutor-1", user.RoleTutor))

		var body resdto.HelpRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.HelpRequests, 1)
		s.Equal(open.RequestID, body.HelpRequests[0].RequestID)
	})

	s.Run("success: the caller's history", func() {
		s.mockQueries.EXPECT().ListByStudent(gomock.Any(), "student-1").Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/help-requests/mine", nil, token("student-1", user.RoleStudent))

		var body resdto.HelpRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.HelpRequests)
		s.Empty(body.HelpRequests)
	})

	s.Run("error: 404 for an unknown request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "hlp_missing").
			Return(nil, errs.Mark(errs.New("help request not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/help-requests/hlp_missing", nil, token("tutor-1", user.RoleTutor))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestClaim
// ================================================================================

func (s *HelpRequestHandlerTestSuite) TestClaim() {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	request := builder.NewHelpRequestBuilder().MustBuildDomain()
	url := "/help-requests/" + request.ID() + "/claim"
	tutor := token("tutor-1", user.RoleTutor)
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.StudentID = request.StudentID()
		bb.LinkedRequestID = request.ID()
	}).MustBuildDomain()

	s.Run("success: returns the claimed request and its booking", func() {
		claimed := builder.NewHelpRequestBuilder().MustBuildDomain()
		s.Require().NoError(claimed.Claim("tutor-1", b.ID(), now))

		s.mockCoord.EXPECT().ClaimHelpRequest(gomock.Any(), request.ID(), "tutor-1", "slot_1", "bring notes").
			Return(&commands.ClaimResult{Request: claimed, Booking: b}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"slotId": "slot_1", "notes": "bring notes"}, tutor)

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Request)
		s.Require().NotNil(body.Booking)
		s.Equal("claimed", body.Request.Status)
		s.Require().NotNil(body.Request.ClaimedBy)
		s.Equal("tutor-1", *body.Request.ClaimedBy)
		s.Equal(b.ID(), body.Request.BookingID)
		s.Equal(b.ID(), body.Booking.BookingID)
	})

	s.Run("success: 201 stands when the read side times out after commit", func() {
		claimed := builder.NewHelpRequestBuilder().MustBuildDomain()
		s.Require().NoError(claimed.Claim("tutor-1", b.ID(), now))

		s.mockCoord.EXPECT().ClaimHelpRequest(gomock.Any(), request.ID(), "tutor-1", "slot_1", "").
			Return(&commands.ClaimResult{Request: claimed, Booking: b}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, context.DeadlineExceeded).AnyTimes()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"slotId": "slot_1"}, tutor)

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Booking)
		s.Equal(b.ID(), body.Booking.BookingID)
		s.Equal("claimed", body.Request.Status)
	})

	s.Run("error: 400 without a slot", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, tutor)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 when another tutor won", func() {
		s.mockCoord.EXPECT().ClaimHelpRequest(gomock.Any(), request.ID(), "tutor-1", "slot_1", "").
			Return(nil, errs.Mark(errs.New("help request already claimed"), errs.ErrAlreadyClaimed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"slotId": "slot_1"}, tutor)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already claimed")
	})
}

// ================================================================================
// TestResolve
// ================================================================================

func (s *HelpRequestHandlerTestSuite) TestResolve() {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	s.Run("success: claimer resolves", func() {
		resolved := builder.NewHelpRequestBuilder().MustBuildDomain()
		s.Require().NoError(resolved.Claim("tutor-1", "bkg_1", now))
		s.Require().NoError(resolved.Resolve("tutor-1", now.Add(time.Hour)))

		s.mockCommands.EXPECT().Resolve(gomock.Any(), resolved.ID(), "tutor-1").Return(resolved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/help-requests/"+resolved.ID()+"/resolve", nil, token("tutor-1", user.RoleTutor))

		var body resdto.HelpRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("resolved", body.Status)
		s.NotNil(body.ResolvedAt)
		s.Require().NotNil(body.ResolvedBy)
		s.Equal("tutor-1", *body.ResolvedBy)
	})

	s.Run("error: 403 for someone else", func() {
		s.mockCommands.EXPECT().Resolve(gomock.Any(), "hlp_1", "student-9").
			Return(nil, errs.Mark(errs.New("only the student or claiming tutor may resolve"), errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/help-requests/hlp_1/resolve", nil, token("student-9", user.RoleStudent))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestWithdraw
// ================================================================================

func (s *HelpRequestHandlerTestSuite) TestWithdraw() {
	student := token("student-1", user.RoleStudent)

	s.Run("success: owner withdraws an open request", func() {
		s.mockCommands.EXPECT().Withdraw(gomock.Any(), "hlp_1", "student-1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/help-requests/hlp_1", nil, student)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: status follows the failure kind", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "not the owner", err: errs.Mark(errs.New("only the student who posted it may withdraw"), errs.ErrForbidden), expectCode: http.StatusForbidden, expectMsg: "withdraw"},
			{name: "already claimed", err: errs.Mark(errs.New("help request is already claimed"), errs.ErrAlreadyClaimed), expectCode: http.StatusConflict, expectMsg: "already claimed"},
			{name: "already resolved", err: errs.Mark(errs.New("help request is already resolved"), errs.ErrAlreadyResolved), expectCode: http.StatusConflict, expectMsg: "already resolved"},
			{name: "unknown request", err: errs.Mark(errs.New("help request not found"), errs.ErrNotFound), expectCode: http.StatusNotFound, expectMsg: "not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Withdraw(gomock.Any(), "hlp_1", "student-1").Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/help-requests/hlp_1", nil, student)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}
