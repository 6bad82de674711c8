package response

import "meeting-room-approval/internal/usecase/queries"

// MeetingRequestResponse is the view itself; its json shape is the API shape.
type MeetingRequestResponse = queries.MeetingRequestView

type HistoryEntryResponse = queries.HistoryEntryView

type AvailabilityResponse = queries.AvailabilityView

type HistoryResponse struct {
	MeetingRequestID int64                  `json:"meetingRequestId"`
	History          []HistoryEntryResponse `json:"history"`
}
