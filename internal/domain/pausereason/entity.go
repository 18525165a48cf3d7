package pausereason

import (
	"time"
)

type PauseReason struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
