// Package session defines the types that describe a finished run and the
// interface for recording it. It sits between the game platform and storage
// so neither has to import the other.
package session

import (
	"fmt"
	"time"
)

// SessionID uniquely identifies one player's sitting, local or SSH.
// IDs only need to be unique within a server's lifetime; they tag log
// lines, not database rows.
type SessionID string

// NewSessionID derives an ID from the player name and the wall clock.
func NewSessionID(player string) SessionID {
	if player == "" {
		player = "local"
	}
	return SessionID(fmt.Sprintf("%s-%d", player, time.Now().UnixNano()))
}

// RunSummary is the end-of-run record handed to a Recorder.
type RunSummary struct {
	Mode      string // Registry ID of the mode played
	Player    string
	Days      int    // Days completed, including the final partial day
	Money     int    // Coins held when the run ended
	Customers int    // Customers served across the whole run
	EndReason string // core.EndSeasonComplete, core.EndRetired, or "quit"
}

// DayRecord is one day's takings within a run.
type DayRecord struct {
	Day    int
	Earned int // Gross coins earned that day, before shop spending
	Served int
}

// Recorder persists finished runs. Implementations must be safe for use
// from the UI goroutine; failures are reported, not fatal, since a run that
// cannot be saved should still end cleanly on screen.
type Recorder interface {
	// SaveRun stores the summary and returns the new run's storage ID.
	SaveRun(sum RunSummary) (int64, error)

	// SaveDays stores the per-day breakdown for a previously saved run.
	SaveDays(runID int64, days []DayRecord) error
}

// DayLogger is implemented by modes that track per-day takings. The
// platform type-asserts for it when a run ends; modes without it simply get
// no day breakdown in storage.
type DayLogger interface {
	DayLog() []DayRecord
}
