//go:build unit

package httperr_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"peer-tutor-scheduler/internal/handler/httperr"
	"peer-tutor-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Validation("subject", "required"), want: http.StatusBadRequest},
		{name: "past date", err: errs.Mark(errs.New("past"), errs.ErrPastDate), want: http.StatusUnprocessableEntity},
		{name: "not found", err: errs.Mark(errs.New("gone"), errs.ErrNotFound), want: http.StatusNotFound},
		{name: "forbidden", err: errs.Mark(errs.New("nope"), errs.ErrForbidden), want: http.StatusForbidden},
		{name: "slot unavailable", err: errs.Mark(errs.New("taken"), errs.ErrSlotUnavailable), want: http.StatusConflict},
		{name: "already claimed", err: errs.Mark(errs.New("claimed"), errs.ErrAlreadyClaimed), want: http.StatusConflict},
		{name: "already resolved", err: errs.Mark(errs.New("resolved"), errs.ErrAlreadyResolved), want: http.StatusConflict},
		{name: "invalid transition", err: errs.Mark(errs.New("edge"), errs.ErrInvalidTransition), want: http.StatusConflict},
		{name: "wrapped kind", err: errs.Wrap(errs.Mark(errs.New("taken"), errs.ErrSlotUnavailable), "book"), want: http.StatusConflict},
		{name: "deadline", err: errs.Wrap(context.DeadlineExceeded, "begin tx"), want: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}
