package domain

import "time"

// DeleteAfterOptions maps the named retention options accepted at box
// creation to their durations.
var DeleteAfterOptions = map[string]time.Duration{
	"ONE_HOUR":   time.Hour,
	"SIX_HOURS":  6 * time.Hour,
	"ONE_DAY":    24 * time.Hour,
	"THREE_DAYS": 72 * time.Hour,
	"ONE_WEEK":   7 * 24 * time.Hour,
}

// DefaultBoxName is used when the creator does not name the box.
const DefaultBoxName = "Untitled Box"
