package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ensureRecordID keeps a caller-supplied identifier and generates one
// otherwise. Identifiers are opaque; uniqueness within a collection is all
// that matters.
func ensureRecordID(id string) string {
	if strings.TrimSpace(id) == "" {
		return uuid.NewString()
	}
	return strings.TrimSpace(id)
}

func ensureRecordDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
