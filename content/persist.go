package content

import (
	"encoding/json"
	"errors"
)

// StateKey is the slot key the whole content blob is stored under.
const StateKey = "wedding_nanny_master_config"

// Slot is a durable key/value location. Get reports ok=false when the key has
// never been written.
type Slot interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
}

// Adapter serializes State to and from a single Slot key. It is the only
// component that touches the slot.
type Adapter struct {
	slot Slot
	key  string
}

// NewAdapter returns an Adapter storing state under StateKey.
func NewAdapter(slot Slot) *Adapter {
	return &Adapter{slot: slot, key: StateKey}
}

// Save writes the full state. Any marshal or write failure is returned as a
// *PersistenceError.
func (a *Adapter) Save(st State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := a.slot.Put(a.key, b); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// persistedState mirrors State but keeps global raw so it can be laid over
// the defaults.
type persistedState struct {
	Cities  map[string]CityPage `json:"cities"`
	Global  json.RawMessage     `json:"global"`
	Backups []BackupEntry       `json:"backups"`
	Logs    []LogEntry          `json:"logs"`
}

// Load reads the saved state. It returns ErrNoSavedState if the slot is
// empty, a *SerializationError if the blob is malformed, and a
// *PersistenceError if the slot cannot be read.
//
// Absent sections are filled from the defaults. GlobalConfig is decoded on top
// of DefaultGlobal so keys missing from older blobs keep their default values;
// a present cities mapping replaces the defaults wholesale.
func (a *Adapter) Load() (State, error) {
	b, ok, err := a.slot.Get(a.key)
	if err != nil {
		return State{}, &PersistenceError{Op: "read", Err: err}
	}
	if !ok {
		return State{}, ErrNoSavedState
	}

	var raw persistedState
	if err := json.Unmarshal(b, &raw); err != nil {
		return State{}, &SerializationError{Key: a.key, Err: err}
	}

	st := State{
		Cities:  raw.Cities,
		Global:  DefaultGlobal(),
		Backups: raw.Backups,
		Logs:    raw.Logs,
	}
	if st.Cities == nil {
		st.Cities = DefaultCities()
	}
	if len(raw.Global) > 0 {
		if err := json.Unmarshal(raw.Global, &st.Global); err != nil {
			return State{}, &SerializationError{Key: a.key, Err: err}
		}
	}
	return st, nil
}

// IsPersistenceError reports whether err is (or wraps) a *PersistenceError.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
