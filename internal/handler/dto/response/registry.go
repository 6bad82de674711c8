package response

import (
	"time"

	"meeting-room-approval/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Capacity      int       `json:"capacity"`
	Location      string    `json:"location"`
	IsHybrid      bool      `json:"isHybrid"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	FacilityIDs   []int64   `json:"facilityIds"`
	FacilityNames []string  `json:"facilities"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.FacilityIDs = make([]int64, 0, len(v.Facilities))
	res.FacilityNames = make([]string, 0, len(v.Facilities))
	for _, f := range v.Facilities {
		res.FacilityIDs = append(res.FacilityIDs, f.ID)
		res.FacilityNames = append(res.FacilityNames, f.Name)
	}
	return &res, nil
}

func FromRoomList(views []*queries.RoomView) ([]*RoomResponse, error) {
	res := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

type EntryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromEntryView(v *queries.EntryView) (*EntryResponse, error) {
	var res EntryResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromEntryList(views []*queries.EntryView) ([]*EntryResponse, error) {
	res := make([]*EntryResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

type OptionsResponse struct {
	Rooms       []*RoomResponse  `json:"rooms"`
	Facilities  []*EntryResponse `json:"facilities"`
	Departments []*EntryResponse `json:"departments"`
}

func FromOptionsView(v *queries.OptionsView) (*OptionsResponse, error) {
	rooms, err := FromRoomList(v.Rooms)
	if err != nil {
		return nil, err
	}
	facilities, err := FromEntryList(v.Facilities)
	if err != nil {
		return nil, err
	}
	departments, err := FromEntryList(v.Departments)
	if err != nil {
		return nil, err
	}
	return &OptionsResponse{Rooms: rooms, Facilities: facilities, Departments: departments}, nil
}

type BulkDeleteResponse struct {
	Deactivated int64 `json:"deactivated"`
}
