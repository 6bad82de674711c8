package request

import "meeting-room-approval/internal/usecase/commands"

type CreateRoomRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	Location    string  `json:"location"`
	IsHybrid    bool    `json:"isHybrid"`
	Description string  `json:"description"`
	FacilityIDs []int64 `json:"facilityIds" binding:"omitempty,dive,min=1"`
}

func (r *CreateRoomRequest) ToInput() commands.RoomInput {
	return commands.RoomInput{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Location:    r.Location,
		IsHybrid:    r.IsHybrid,
		Description: r.Description,
		FacilityIDs: r.FacilityIDs,
	}
}

// UpdateRoomRequest replaces the facility set only when facilityIds is sent.
type UpdateRoomRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1"`
	Location    *string  `json:"location"`
	IsHybrid    *bool    `json:"isHybrid"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"isActive"`
	FacilityIDs *[]int64 `json:"facilityIds" binding:"omitempty,dive,min=1"`
}

func (r *UpdateRoomRequest) ToInput() commands.RoomPatchInput {
	return commands.RoomPatchInput{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Location:    r.Location,
		IsHybrid:    r.IsHybrid,
		Description: r.Description,
		IsActive:    r.IsActive,
		FacilityIDs: r.FacilityIDs,
	}
}

// CreateEntryRequest serves facilities and departments.
type CreateEntryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

func (r *CreateEntryRequest) ToInput() commands.EntryInput {
	return commands.EntryInput{Name: r.Name, Description: r.Description}
}

type UpdateEntryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (r *UpdateEntryRequest) ToInput() commands.EntryPatchInput {
	return commands.EntryPatchInput{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,dive,min=1"`
}
