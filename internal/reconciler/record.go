package reconciler

import (
	"strings"
	"time"
)

// Key is the natural key of a selectable subject.
type Key struct {
	Code string
	Name string
}

// Valid reports whether both parts of the key are non-empty.
func (k Key) Valid() bool {
	return strings.TrimSpace(k.Code) != "" && strings.TrimSpace(k.Name) != ""
}

func (k Key) String() string { return k.Code + "/" + k.Name }

func (k Key) normalize() Key {
	return Key{Code: strings.TrimSpace(k.Code), Name: strings.TrimSpace(k.Name)}
}

// Meta is descriptive data carried alongside a selection.
type Meta struct {
	Category string
	Reason   string
}

// Item describes a subject the user can toggle.
type Item struct {
	Key  Key
	Meta Meta
}

// Record is one entry of the local view: either Confirmed or Pending.
type Record interface {
	RecordKey() Key
	record()
}

// Confirmed is a selection the store has acknowledged.
type Confirmed struct {
	ID        string
	Key       Key
	Meta      Meta
	CreatedAt time.Time
}

func (c Confirmed) RecordKey() Key { return c.Key }
func (Confirmed) record()          {}

// Pending stands in for a selection whose create request is in flight.
// TempID is never sent to the store.
type Pending struct {
	TempID string
	Key    Key
	Meta   Meta
}

func (p Pending) RecordKey() Key { return p.Key }
func (Pending) record()          {}
