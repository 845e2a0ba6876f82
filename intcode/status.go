package intcode

// Status is the result of a single step.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING  = Status(0) // running
	STATUS_COMPLETE = Status(1) // complete
)
