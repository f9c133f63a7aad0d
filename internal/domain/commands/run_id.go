package commands

import (
	"crypto/rand"
	"time"

	ulid "github.com/oklog/ulid/v2"
)

var (
	ulidEntropy = ulid.Monotonic(rand.Reader, 0) //nolint:gochecknoglobals // shared entropy source
)

// newRunID returns a sortable identifier used to correlate the log lines of one run.
func newRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}
