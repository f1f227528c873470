package core

import "time"

// Stats is a point-in-time summary of a running automaton.
type Stats struct {
	Generation int64
	Population int
	Seeded     int
	Width      uint32
	Height     uint32
	FrameTime  time.Duration
	Budget     time.Duration
}
