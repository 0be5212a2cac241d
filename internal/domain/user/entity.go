package user

import (
	"errors"
	"strings"
)

var ErrEmptyDisplayName = errors.New("display name is required")

// Profile is the slice of a directory user the scheduler reads.
type Profile struct {
	id          string
	displayName string
	role        Role
}

func NewProfile(id, displayName string, role Role) (*Profile, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, ErrEmptyDisplayName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Profile{id: id, displayName: name, role: role}, nil
}

func (p *Profile) ID() string          { return p.id }
func (p *Profile) DisplayName() string { return p.displayName }
func (p *Profile) Role() Role          { return p.role }
