// Package uuid wraps google/uuid with the binding hooks gin needs
// to parse IDs from URI and query parameters.
package uuid

import (
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements the gin binding interface for URI and
// query parameters. An empty parameter parses to Nil so that optional
// ID filters can be detected.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return httputil.ErrInvalidUUID
	}

	*u = UUID{parsed}
	return nil
}
