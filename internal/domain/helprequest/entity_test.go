//go:build unit

package helprequest_test

import (
	"testing"
	"time"

	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHelpRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewHelpRequestBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, helprequest.StatusOpen, r.Status())
		assert.Nil(t, r.ClaimedByPtr())
		assert.Equal(t, b.Now.Add(7*24*time.Hour), r.ExpiresAt())
		assert.Equal(t, helprequest.UrgencyMedium, r.Urgency())
	})

	cases := []struct {
		name   string
		mutate func(*builder.HelpRequestBuilder)
		errIs  error
	}{
		{name: "missing student", mutate: func(b *builder.HelpRequestBuilder) { b.StudentID = "" }, errIs: helprequest.ErrStudentRequired},
		{name: "missing subject", mutate: func(b *builder.HelpRequestBuilder) { b.Subject = " " }, errIs: helprequest.ErrSubjectRequired},
		{name: "missing topic", mutate: func(b *builder.HelpRequestBuilder) { b.Topic = "" }, errIs: helprequest.ErrTopicRequired},
		{name: "unknown urgency", mutate: func(b *builder.HelpRequestBuilder) { b.Urgency = "asap" }, errIs: errs.ErrValidation},
		{name: "unknown preferred format", mutate: func(b *builder.HelpRequestBuilder) { b.PreferredFormat = "Carrier pigeon" }, errIs: errs.ErrValidation},
		{name: "upper case urgency", mutate: func(b *builder.HelpRequestBuilder) { b.Urgency = "HIGH" }},
		{name: "in person preference", mutate: func(b *builder.HelpRequestBuilder) { b.PreferredFormat = "InPerson" }},
		{name: "non positive ttl falls back to a week", mutate: func(b *builder.HelpRequestBuilder) { b.TTL = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewHelpRequestBuilder()
			tc.mutate(b)
			r, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.Now.Add(helprequest.DefaultTTL), r.ExpiresAt())
		})
	}
}

func TestHelpRequest_Claim(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("open request becomes claimed", func(t *testing.T) {
		r := builder.NewHelpRequestBuilder().MustBuildDomain()

		require.NoError(t, r.Claim("tutor-1", "bkg_1", now))
		assert.Equal(t, helprequest.StatusClaimed, r.Status())
		assert.Equal(t, "tutor-1", r.ClaimedBy())
		assert.Equal(t, "bkg_1", r.BookingID())
		assert.Equal(t, now, *r.ClaimedAt())
	})

	t.Run("second claim reports already claimed", func(t *testing.T) {
		r := builder.NewHelpRequestBuilder().MustBuildDomain()
		require.NoError(t, r.Claim("tutor-1", "bkg_1", now))

		err := r.Claim("tutor-2", "bkg_2", now)
		assert.True(t, errs.Is(err, errs.ErrAlreadyClaimed))
		assert.Equal(t, "tutor-1", r.ClaimedBy())
	})

	t.Run("resolved request reports already resolved", func(t *testing.T) {
		r := builder.NewHelpRequestBuilder().MustBuildDomain()
		require.NoError(t, r.Claim("tutor-1", "bkg_1", now))
		require.NoError(t, r.Resolve("student-1", now))

		err := r.EnsureClaimable("tutor-2", now)
		assert.True(t, errs.Is(err, errs.ErrAlreadyResolved))
	})

	t.Run("student cannot claim own request", func(t *testing.T) {
		r := builder.NewHelpRequestBuilder().MustBuildDomain()
		err := r.Claim("student-1", "bkg_1", now)
		assert.True(t, errs.Is(err, helprequest.ErrSelfClaim))
		assert.Equal(t, helprequest.StatusOpen, r.Status())
		assert.Nil(t, r.ClaimedByPtr())
	})

	t.Run("expired request cannot be claimed", func(t *testing.T) {
		r := builder.NewHelpRequestBuilder().MustBuildDomain()
		err := r.Claim("tutor-1", "bkg_1", r.ExpiresAt().Add(time.Second))
		assert.True(t, errs.Is(err, helprequest.ErrExpired))
	})
}

func TestHelpRequest_Resolve(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		claim   bool
		actorID string
		errIs   error
	}{
		{name: "student resolves", claim: true, actorID: "student-1"},
		{name: "claiming tutor resolves", claim: true, actorID: "tutor-1"},
		{name: "stranger is forbidden", claim: true, actorID: "tutor-9", errIs: errs.ErrForbidden},
		{name: "open request cannot resolve", claim: false, actorID: "student-1", errIs: errs.ErrInvalidTransition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := builder.NewHelpRequestBuilder().MustBuildDomain()
			if tc.claim {
				require.NoError(t, r.Claim("tutor-1", "bkg_1", now))
			}
			err := r.Resolve(tc.actorID, now.Add(time.Hour))
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, helprequest.StatusResolved, r.Status())
			assert.Equal(t, "tutor-1", r.ClaimedBy())
			assert.Equal(t, now.Add(time.Hour), *r.ResolvedAt())
			require.NotNil(t, r.ResolvedByPtr())
			assert.Equal(t, tc.actorID, *r.ResolvedByPtr())
		})
	}

	t.Run("resolving twice", func(t *testing.T) {
		r := builder.NewHelpRequestBuilder().MustBuildDomain()
		require.NoError(t, r.Claim("tutor-1", "bkg_1", now))
		require.NoError(t, r.Resolve("student-1", now))
		assert.True(t, errs.Is(r.Resolve("student-1", now), errs.ErrAlreadyResolved))
	})
}

func TestHelpRequest_EnsureWithdrawable(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		setup     func(r *helprequest.HelpRequest)
		studentID string
		errIs     error
	}{
		{name: "owner withdraws an open request", studentID: "student-1"},
		{name: "another student is forbidden", studentID: "student-2", errIs: errs.ErrForbidden},
		{
			name:      "claimed request",
			setup:     func(r *helprequest.HelpRequest) { _ = r.Claim("tutor-1", "bkg_1", now) },
			studentID: "student-1",
			errIs:     errs.ErrAlreadyClaimed,
		},
		{
			name: "resolved request",
			setup: func(r *helprequest.HelpRequest) {
				_ = r.Claim("tutor-1", "bkg_1", now)
				_ = r.Resolve("tutor-1", now)
			},
			studentID: "student-1",
			errIs:     errs.ErrAlreadyResolved,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := builder.NewHelpRequestBuilder().MustBuildDomain()
			if tc.setup != nil {
				tc.setup(r)
			}
			err := r.EnsureWithdrawable(tc.studentID)
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
