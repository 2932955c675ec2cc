package appointment

import "strings"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// BlockingStatuses ocupam a agenda do dentista.
var BlockingStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
}

// BlockingStatusValues é a forma usada nas queries.
func BlockingStatusValues() []string {
	out := make([]string, 0, len(BlockingStatuses))
	for _, s := range BlockingStatuses {
		out = append(out, string(s))
	}
	return out
}

func (s Status) IsBlocking() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) Valid() bool {
	return s.IsBlocking() || s.IsTerminal()
}

// ParseStatus aceita o nome em qualquer caixa.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// ===============================
// Validations
// ===============================

// CanTransition define se um agendamento pode ir de current para next.
// Repetir o status atual é sempre permitido; estados finais não mudam.
func CanTransition(current, next Status) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if current == next {
		return nil
	}
	if current.IsTerminal() {
		return ErrInvalidState
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
