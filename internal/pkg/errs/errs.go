package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Join combines every non-nil error in list, or returns nil when there is none.
func Join(list ...error) error {
	return cr.Join(list...)
}

// Is understands marks applied with Mark, unlike the standard library.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// Validation builds a field-level error of kind ErrValidation.
func Validation(field, reason string) error {
	return cr.Mark(cr.Newf("%s: %s", field, reason), ErrValidation)
}

// Kind reports the first scheduling kind err is marked with, or nil.
func Kind(err error) error {
	for _, k := range kinds {
		if cr.Is(err, k) {
			return k
		}
	}
	return nil
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
