package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Op names a store mutation.
type Op string

const (
	OpLoad          Op = "load"
	OpUpdateCity    Op = "update_city"
	OpUpdateGlobal  Op = "update_global"
	OpCreateBackup  Op = "create_backup"
	OpRestoreBackup Op = "restore_backup"
	OpDeleteBackup  Op = "delete_backup"
	OpReset         Op = "reset"
)

// Event is delivered to subscribers after every mutation. Err is set when the
// change was applied in memory but could not be persisted.
type Event struct {
	Op     Op
	Target string
	Err    error
}

// Store is the single source of truth for site content. All methods are safe
// for concurrent use; every mutation holds the write lock until the in-memory
// state, the change log and the persisted snapshot agree.
//
// Live state is copy-on-write: mutations build new maps and slices instead of
// editing the current ones, and readers get deep copies.
type Store struct {
	mu          sync.RWMutex
	adapter     *Adapter
	state       State
	loadWarning error

	now         func() time.Time
	newID       func() string
	newBackupID func() string

	subsMu  sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerators replaces the log and backup id generators.
func WithIDGenerators(logID, backupID func() string) Option {
	return func(s *Store) {
		if logID != nil {
			s.newID = logID
		}
		if backupID != nil {
			s.newBackupID = backupID
		}
	}
}

// New returns a Store seeded with the built-in defaults. Call Load to replace
// them with previously saved content.
func New(adapter *Adapter, opts ...Option) *Store {
	s := &Store{
		adapter: adapter,
		state: State{
			Cities: DefaultCities(),
			Global: DefaultGlobal(),
		},
		now:   time.Now,
		newID: uuid.NewString,
		newBackupID: func() string {
			return "bk-" + uuid.Must(uuid.NewV7()).String()
		},
		subs: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory state with the saved one. An empty slot is not
// an error. On a malformed blob or a read failure the store keeps its
// defaults, remembers the error for LoadWarning, and returns it.
func (s *Store) Load() error {
	st, err := s.adapter.Load()
	s.mu.Lock()
	switch {
	case err == nil:
		s.state = st
		s.loadWarning = nil
	case errors.Is(err, ErrNoSavedState):
		err = nil
	default:
		s.loadWarning = err
	}
	s.mu.Unlock()
	s.notify(Event{Op: OpLoad})
	return err
}

// LoadWarning returns the error from the last failed Load, if any.
func (s *Store) LoadWarning() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadWarning
}

// Subscribe registers fn to be called after every mutation. The returned func
// removes the subscription. fn runs outside the store lock and may read the store.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()
	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *Store) notify(ev Event) {
	s.subsMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// mutate runs fn against the current state under the write lock. If fn
// succeeds its result becomes the live state and is persisted; a failed write
// is returned but the new state is kept.
func (s *Store) mutate(op Op, target string, fn func(cur State) (State, error)) error {
	s.mu.Lock()
	next, err := fn(s.state)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	perr := s.adapter.Save(next)
	s.mu.Unlock()

	s.notify(Event{Op: op, Target: target, Err: perr})
	return perr
}

// Cities returns a deep copy of all city pages keyed by slug.
func (s *Store) Cities() map[string]CityPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCities(s.state.Cities)
}

// City returns a copy of one city page.
func (s *Store) City(id string) (CityPage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.state.Cities[id]
	if !ok {
		return CityPage{}, false
	}
	return p.Clone(), true
}

// CityIDs returns all city slugs, home first and the rest sorted.
func (s *Store) CityIDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.state.Cities))
	for id := range s.state.Cities {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool {
		if ids[i] == HomeCityID || ids[j] == HomeCityID {
			return ids[i] == HomeCityID
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Global returns a copy of the site-wide settings.
func (s *Store) Global() GlobalConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Global.Clone()
}

// Logs returns the change log, newest first.
func (s *Store) Logs() []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLogs(s.state.Logs)
}

// State returns a deep copy of everything the store holds.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// UpdateCity replaces (or adds) the page stored under cityID. The page is
// stored as given; callers merge individual fields beforehand. An empty
// description defaults to "Updated city: {name}".
func (s *Store) UpdateCity(cityID string, page CityPage, description string) error {
	cityID = strings.TrimSpace(cityID)
	if cityID == "" {
		return invalidf("city id is required")
	}
	if err := validateCity(page); err != nil {
		return err
	}
	page = page.Clone()
	if page.ID == "" {
		page.ID = cityID
	}
	if description == "" {
		description = "Updated city: " + page.Name
	}
	return s.mutate(OpUpdateCity, cityID, func(cur State) (State, error) {
		cities := make(map[string]CityPage, len(cur.Cities)+1)
		for id, p := range cur.Cities {
			cities[id] = p
		}
		cities[cityID] = page
		next := cur
		next.Cities = cities
		next.Logs = appendLog(cur.Logs, s.newLogEntry(description))
		return next, nil
	})
}

// UpdateGlobal replaces the site-wide settings. An empty description defaults
// to "Updated Global Settings".
func (s *Store) UpdateGlobal(g GlobalConfig, description string) error {
	if description == "" {
		description = "Updated Global Settings"
	}
	g = g.Clone()
	return s.mutate(OpUpdateGlobal, "", func(cur State) (State, error) {
		next := cur
		next.Global = g
		next.Logs = appendLog(cur.Logs, s.newLogEntry(description))
		return next, nil
	})
}

func validateCity(p CityPage) error {
	for i, t := range p.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			return invalidf("testimonial %d: rating %d outside 1..5", i, t.Rating)
		}
	}
	return nil
}

// String implements fmt.Stringer for log lines.
func (ev Event) String() string {
	if ev.Target == "" {
		return string(ev.Op)
	}
	return fmt.Sprintf("%s(%s)", ev.Op, ev.Target)
}
