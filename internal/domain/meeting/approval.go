package meeting

import "meeting-room-approval/internal/domain/user"

// Decision is the value of a single approval field.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) IsValid() bool {
	switch d {
	case DecisionPending, DecisionApproved, DecisionRejected:
		return true
	default:
		return false
	}
}

func ParseDecision(s string) (Decision, error) {
	d := Decision(s)
	if !d.IsValid() {
		return "", ErrUnknownDecision
	}
	return d, nil
}

type Stage string

const (
	StageGA Stage = "GA"
	StageOS Stage = "OS"
)

// Actor is the label recorded in history for decisions taken at this stage.
func (s Stage) Actor() string {
	return "Head " + string(s)
}

type Action string

const (
	ActionApproveGA Action = "approveGA"
	ActionRejectGA  Action = "rejectGA"
	ActionApproveOS Action = "approveOS"
	ActionRejectOS  Action = "rejectOS"
)

func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionApproveGA, ActionRejectGA, ActionApproveOS, ActionRejectOS:
		return a, nil
	default:
		return "", ErrInvalidAction
	}
}

func AllActions() []Action {
	return []Action{ActionApproveGA, ActionRejectGA, ActionApproveOS, ActionRejectOS}
}

func (a Action) Stage() Stage {
	switch a {
	case ActionApproveGA, ActionRejectGA:
		return StageGA
	case ActionApproveOS, ActionRejectOS:
		return StageOS
	default:
		return ""
	}
}

func (a Action) Outcome() Decision {
	if a == ActionApproveGA || a == ActionApproveOS {
		return DecisionApproved
	}
	return DecisionRejected
}

// PermittedFor reports whether role may take the action. Admins may act at
// either stage.
func (a Action) PermittedFor(role user.Role) bool {
	switch a.Stage() {
	case StageGA:
		return role == user.RoleHeadGA || role == user.RoleAdmin
	case StageOS:
		return role == user.RoleHeadOS || role == user.RoleAdmin
	default:
		return false
	}
}

// Label renders the history action text, e.g. "Approved by Head GA".
func (a Action) Label() string {
	verb := "Rejected"
	if a.Outcome() == DecisionApproved {
		verb = "Approved"
	}
	return verb + " by " + a.Stage().Actor()
}

// State is the approval workflow position of a request. The raw
// (headGA, headOS) pair is derived from it, never the other way around
// except when loading stored rows.
type State int

const (
	AwaitingGA State = iota + 1
	AwaitingOS
	Approved
	RejectedAtGA
	RejectedAtOS
)

func (s State) String() string {
	switch s {
	case AwaitingGA:
		return "AwaitingGA"
	case AwaitingOS:
		return "AwaitingOS"
	case Approved:
		return "Approved"
	case RejectedAtGA:
		return "RejectedAtGA"
	case RejectedAtOS:
		return "RejectedAtOS"
	default:
		return "Unknown"
	}
}

func (s State) Fields() (headGA, headOS Decision) {
	switch s {
	case AwaitingOS:
		return DecisionApproved, DecisionPending
	case Approved:
		return DecisionApproved, DecisionApproved
	case RejectedAtGA:
		return DecisionRejected, DecisionPending
	case RejectedAtOS:
		return DecisionApproved, DecisionRejected
	default:
		return DecisionPending, DecisionPending
	}
}

// StateFromFields rebuilds a state from a stored pair. Pairs the gate makes
// unreachable mean the row was written outside this package.
func StateFromFields(headGA, headOS Decision) (State, error) {
	if !headGA.IsValid() || !headOS.IsValid() {
		return 0, ErrUnknownDecision
	}
	switch {
	case headGA == DecisionPending && headOS == DecisionPending:
		return AwaitingGA, nil
	case headGA == DecisionApproved && headOS == DecisionPending:
		return AwaitingOS, nil
	case headGA == DecisionApproved && headOS == DecisionApproved:
		return Approved, nil
	case headGA == DecisionApproved && headOS == DecisionRejected:
		return RejectedAtOS, nil
	case headGA == DecisionRejected && headOS == DecisionPending:
		return RejectedAtGA, nil
	default:
		return 0, ErrUnreachableState
	}
}

func (s State) Apply(a Action) (State, error) {
	switch a.Stage() {
	case StageGA:
		switch s {
		case AwaitingGA:
			if a.Outcome() == DecisionApproved {
				return AwaitingOS, nil
			}
			return RejectedAtGA, nil
		case AwaitingOS, RejectedAtGA:
			return s, ErrGAAlreadyDecided
		}
	case StageOS:
		switch s {
		case AwaitingOS:
			if a.Outcome() == DecisionApproved {
				return Approved, nil
			}
			return RejectedAtOS, nil
		case AwaitingGA, RejectedAtGA:
			return s, ErrOSBeforeGA
		}
	default:
		return s, ErrInvalidAction
	}
	return s, ErrRequestClosed
}

func (s State) IsTerminal() bool {
	return s == Approved || s == RejectedAtGA || s == RejectedAtOS
}

func (s State) Status() Status {
	return DeriveStatus(s.Fields())
}

// Status is the overall outcome shown to users.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// DeriveStatus is defined for every raw pair, reachable or not.
func DeriveStatus(headGA, headOS Decision) Status {
	switch {
	case headGA == DecisionRejected || headOS == DecisionRejected:
		return StatusRejected
	case headGA == DecisionApproved && headOS == DecisionApproved:
		return StatusApproved
	default:
		return StatusPending
	}
}
