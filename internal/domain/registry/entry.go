package registry

import (
	"strings"
	"time"

	"meeting-room-approval/internal/pkg/patch"
)

const MaxNameLength = 100

// Kind names one of the reference tables.
type Kind string

const (
	KindRoom       Kind = "room"
	KindFacility   Kind = "facility"
	KindDepartment Kind = "department"
)

// Plural is the collection name used in URLs.
func (k Kind) Plural() string {
	switch k {
	case KindFacility:
		return "facilities"
	default:
		return string(k) + "s"
	}
}

func (k Kind) ErrNotFound() error {
	switch k {
	case KindRoom:
		return ErrRoomNotFound
	case KindFacility:
		return ErrFacilityNotFound
	default:
		return ErrDepartmentNotFound
	}
}

func (k Kind) ErrNameTaken() error {
	switch k {
	case KindRoom:
		return ErrRoomNameTaken
	case KindFacility:
		return ErrFacilityNameTaken
	default:
		return ErrDepartmentNameTaken
	}
}

// Entry is a named, soft-deletable reference record. Facilities and
// departments are plain entries; rooms embed one.
type Entry struct {
	id          int64
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEntry(name, description string, now time.Time) (Entry, error) {
	n, err := validateName(name)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		name:        n,
		description: strings.TrimSpace(description),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructEntry(id int64, name, description string, isActive bool, createdAt, updatedAt time.Time) Entry {
	return Entry{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

type EntryPatch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

func (e *Entry) Apply(p EntryPatch, now time.Time) error {
	next := *e
	if p.Name != nil {
		n, err := validateName(*p.Name)
		if err != nil {
			return err
		}
		next.name = n
	}
	next.description = patch.Coalesce(patch.TrimmedString(p.Description), next.description)
	next.isActive = patch.Coalesce(p.IsActive, next.isActive)
	next.updatedAt = now
	*e = next
	return nil
}

func (e Entry) ID() int64            { return e.id }
func (e Entry) Name() string         { return e.name }
func (e Entry) Description() string  { return e.description }
func (e Entry) IsActive() bool       { return e.isActive }
func (e Entry) CreatedAt() time.Time { return e.createdAt }
func (e Entry) UpdatedAt() time.Time { return e.updatedAt }

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
