package record

import (
	"time"
)

// Record is a persistent entity addressed by a string id with a last-updated timestamp.
type Record interface {
	ID() string
	SetID(id string)
	HasIdentity() bool
	Updated() time.Time
	Touch(now time.Time)
}

// Meta carries the identity and timestamp every Record shares. Embed it by value.
type Meta struct {
	id      string
	updated time.Time
}

func RestoreMeta(id string, updated time.Time) Meta {
	return Meta{id: id, updated: Normalize(updated)}
}

func (m *Meta) ID() string { return m.id }

// SetID assigns the identity once; later calls are ignored.
func (m *Meta) SetID(id string) {
	if m.id != "" {
		return
	}
	m.id = id
}

func (m *Meta) HasIdentity() bool { return m.id != "" }

func (m *Meta) Updated() time.Time { return m.updated }

// Touch refreshes the timestamp without ever moving it backwards.
func (m *Meta) Touch(now time.Time) {
	now = Normalize(now)
	if now.After(m.updated) {
		m.updated = now
	}
}

// Normalize maps a timestamp to the precision both stores keep.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// LatestUpdate returns the newest timestamp across records, zero for an empty slice.
func LatestUpdate[R Record](records []R) time.Time {
	var latest time.Time
	for _, r := range records {
		if u := r.Updated(); u.After(latest) {
			latest = u
		}
	}
	return latest
}
