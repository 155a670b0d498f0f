package shared

// Outcome tells the transport layer how a record operation ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeCreated
	OutcomeSeeOther
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeSeeOther:
		return "see_other"
	default:
		return "ok"
	}
}
