package deal

import "time"

// Deal sources
const (
	FromTop    = "top"
	FromBottom = "bottom"
)

// DealRecord captures a single card dealt during a session
type DealRecord struct {
	ID        string
	SessionID string
	Card      string
	From      string // "top" or "bottom"
	Sequence  int
	DealtAt   time.Time
}
