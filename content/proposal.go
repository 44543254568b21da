package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Action names a destructive operation that must be confirmed before it runs.
type Action string

const (
	ActionRestore Action = "restore"
	ActionReset   Action = "reset"
)

// RequiresConfirmation reports whether the caller must obtain explicit
// confirmation before committing a proposal for a.
func (a Action) RequiresConfirmation() bool {
	switch a {
	case ActionRestore, ActionReset:
		return true
	}
	return false
}

// Proposal describes what a destructive operation would change. It is
// computed without touching the store; Commit performs it.
type Proposal struct {
	Action               Action `json:"action"`
	BackupID             string `json:"backupId,omitempty"`
	Label                string `json:"label"`
	Diff                 string `json:"diff"`
	Added                int    `json:"added"`
	Removed              int    `json:"removed"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
}

// Empty reports whether committing p would leave the content unchanged.
func (p Proposal) Empty() bool {
	return p.Added == 0 && p.Removed == 0
}

// ProposeRestore describes restoring the backup with the given id. It returns
// ErrNotFound for an unknown id.
func (s *Store) ProposeRestore(id string) (Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := findBackup(s.state.Backups, id)
	if !ok {
		return Proposal{}, notFoundf("backup %q", id)
	}
	p := Proposal{
		Action:               ActionRestore,
		BackupID:             b.ID,
		Label:                b.Label,
		RequiresConfirmation: ActionRestore.RequiresConfirmation(),
	}
	cur := Snapshot{Cities: s.state.Cities, Global: s.state.Global}
	p.Diff, p.Added, p.Removed = diffSnapshots(cur, b.Data)
	return p, nil
}

// ProposeReset describes a factory reset of cities and global settings.
func (s *Store) ProposeReset() Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := Proposal{
		Action:               ActionReset,
		Label:                "Factory Defaults",
		RequiresConfirmation: ActionReset.RequiresConfirmation(),
	}
	cur := Snapshot{Cities: s.state.Cities, Global: s.state.Global}
	target := Snapshot{Cities: DefaultCities(), Global: DefaultGlobal()}
	p.Diff, p.Added, p.Removed = diffSnapshots(cur, target)
	return p
}

// Commit performs a proposal once the caller has confirmed it. A restore of a
// backup deleted since the proposal was made fails with ErrNotFound and
// changes nothing.
func (s *Store) Commit(p Proposal) error {
	switch p.Action {
	case ActionRestore:
		return s.restore(p.BackupID)
	case ActionReset:
		return s.reset()
	default:
		return invalidf("unknown action %q", p.Action)
	}
}

// diffSnapshots returns the changed lines between the indented JSON of a and
// b, prefixed with "+ " or "- ", and the number of added and removed lines.
func diffSnapshots(a, b Snapshot) (text string, added, removed int) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(indentJSON(a), indentJSON(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if d.Type == diffmatchpatch.DiffInsert {
				added++
			} else {
				removed++
			}
		}
	}
	return sb.String(), added, removed
}

func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<unencodable: %v>\n", err)
	}
	return string(b) + "\n"
}
