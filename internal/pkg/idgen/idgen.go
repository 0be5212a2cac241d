// Package idgen issues the opaque identifiers of scheduling records.
package idgen

import (
	"peer-tutor-scheduler/internal/pkg/errs"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	size     = 16
)

const (
	PrefixSlot        = "slot"
	PrefixBooking     = "bkg"
	PrefixHelpRequest = "hlp"
)

// Generator is injected into domain services so tests can pin ids.
type Generator interface {
	NewID(prefix string) (string, error)
}

type NanoGenerator struct{}

func NewNanoGenerator() Generator {
	return NanoGenerator{}
}

func (NanoGenerator) NewID(prefix string) (string, error) {
	id, err := gonanoid.Generate(alphabet, size)
	if err != nil {
		return "", errs.Wrap(err, "generate id")
	}
	return prefix + "_" + id, nil
}
