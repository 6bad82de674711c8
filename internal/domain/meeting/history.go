package meeting

import "time"

type EntryStatus string

const (
	EntrySubmitted EntryStatus = "submitted"
	EntryApproved  EntryStatus = "approved"
	EntryRejected  EntryStatus = "rejected"
)

func (s EntryStatus) IsValid() bool {
	return s == EntrySubmitted || s == EntryApproved || s == EntryRejected
}

const (
	ActionSubmitted = "Pengajuan ruang meeting"
	ActionUpdated   = "Meeting request updated"
	ActorEditor     = "User"
	NoteUpdated     = "Meeting details updated"
)

// HistoryEntry is one immutable record of a transition.
type HistoryEntry struct {
	id        int64
	timestamp time.Time
	action    string
	by        string
	whatsapp  string
	status    EntryStatus
	notes     string
}

func ReconstructHistoryEntry(id int64, timestamp time.Time, action, by, whatsapp string, status EntryStatus, notes string) HistoryEntry {
	return HistoryEntry{
		id:        id,
		timestamp: timestamp,
		action:    action,
		by:        by,
		whatsapp:  whatsapp,
		status:    status,
		notes:     notes,
	}
}

func (e HistoryEntry) ID() int64            { return e.id }
func (e HistoryEntry) Timestamp() time.Time { return e.timestamp }
func (e HistoryEntry) Action() string       { return e.action }
func (e HistoryEntry) By() string           { return e.by }
func (e HistoryEntry) Whatsapp() string     { return e.whatsapp }
func (e HistoryEntry) Status() EntryStatus  { return e.status }
func (e HistoryEntry) Notes() string        { return e.notes }

// History is the ordered ledger owned by one request. It only grows.
type History struct {
	entries []HistoryEntry
}

// NewHistory checks the ordering of stored entries.
func NewHistory(entries []HistoryEntry) (History, error) {
	if len(entries) > 0 && entries[0].status != EntrySubmitted {
		return History{}, ErrHistoryNoOrigin
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].timestamp.Before(entries[i-1].timestamp) {
			return History{}, ErrHistoryOutOfOrder
		}
	}
	cp := make([]HistoryEntry, len(entries))
	copy(cp, entries)
	return History{entries: cp}, nil
}

func (h History) Entries() []HistoryEntry {
	cp := make([]HistoryEntry, len(h.entries))
	copy(cp, h.entries)
	return cp
}

func (h History) Len() int { return len(h.entries) }

func (h History) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Stamp returns now, or the previous timestamp when the clock went backwards.
func (h History) Stamp(now time.Time) time.Time {
	if last, ok := h.Last(); ok && now.Before(last.timestamp) {
		return last.timestamp
	}
	return now
}

func (h *History) record(e HistoryEntry) HistoryEntry {
	e.timestamp = h.Stamp(e.timestamp)
	h.entries = append(h.entries, e)
	return e
}

func submissionEntry(requester, whatsapp string, at time.Time) HistoryEntry {
	return HistoryEntry{
		timestamp: at,
		action:    ActionSubmitted,
		by:        requester,
		whatsapp:  whatsapp,
		status:    EntrySubmitted,
	}
}

func approvalEntry(a Action, notes string, at time.Time) HistoryEntry {
	status := EntryRejected
	if a.Outcome() == DecisionApproved {
		status = EntryApproved
	}
	return HistoryEntry{
		timestamp: at,
		action:    a.Label(),
		by:        a.Stage().Actor(),
		status:    status,
		notes:     notes,
	}
}

func editEntry(at time.Time) HistoryEntry {
	return HistoryEntry{
		timestamp: at,
		action:    ActionUpdated,
		by:        ActorEditor,
		status:    EntrySubmitted,
		notes:     NoteUpdated,
	}
}
