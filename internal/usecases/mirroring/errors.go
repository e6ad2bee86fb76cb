package mirroring

import "errors"

var (
	ErrListAutopilots = errors.New("error listing autopilots")
	ErrPublish        = errors.New("error publishing worksheet")
	ErrSnapshot       = errors.New("error saving settings snapshot")
	ErrReadHistory    = errors.New("error reading settings history")
)
