package registry

import (
	"slices"
	"strings"
	"time"

	"meeting-room-approval/internal/pkg/patch"
)

type Room struct {
	Entry
	capacity    int
	location    string
	isHybrid    bool
	facilityIDs []int64
}

type RoomSpec struct {
	Name        string
	Capacity    int
	Location    string
	IsHybrid    bool
	Description string
	FacilityIDs []int64
}

func NewRoom(in RoomSpec, now time.Time) (*Room, error) {
	entry, err := NewEntry(in.Name, in.Description, now)
	if err != nil {
		return nil, err
	}
	if in.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Room{
		Entry:       entry,
		capacity:    in.Capacity,
		location:    strings.TrimSpace(in.Location),
		isHybrid:    in.IsHybrid,
		facilityIDs: dedupeIDs(in.FacilityIDs),
	}, nil
}

func ReconstructRoom(entry Entry, capacity int, location string, isHybrid bool, facilityIDs []int64) *Room {
	return &Room{
		Entry:       entry,
		capacity:    capacity,
		location:    location,
		isHybrid:    isHybrid,
		facilityIDs: facilityIDs,
	}
}

type RoomPatch struct {
	EntryPatch
	Capacity    *int
	Location    *string
	IsHybrid    *bool
	FacilityIDs *[]int64
}

func (r *Room) Apply(p RoomPatch, now time.Time) error {
	if p.Capacity != nil && *p.Capacity < 1 {
		return ErrInvalidCapacity
	}
	if err := r.Entry.Apply(p.EntryPatch, now); err != nil {
		return err
	}
	r.capacity = patch.Coalesce(p.Capacity, r.capacity)
	r.location = patch.Coalesce(patch.TrimmedString(p.Location), r.location)
	r.isHybrid = patch.Coalesce(p.IsHybrid, r.isHybrid)
	if p.FacilityIDs != nil {
		r.facilityIDs = dedupeIDs(*p.FacilityIDs)
	}
	return nil
}

func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Location() string     { return r.location }
func (r *Room) IsHybrid() bool       { return r.isHybrid }
func (r *Room) FacilityIDs() []int64 { return slices.Clone(r.facilityIDs) }

func dedupeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// DedupeIDs drops non-positive and repeated ids, keeping order.
func DedupeIDs(ids []int64) ([]int64, error) {
	out := dedupeIDs(ids)
	if len(out) == 0 {
		return nil, ErrEmptyIDs
	}
	return out, nil
}
