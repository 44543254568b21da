package content

import "strings"

// Backups returns all backups, newest first.
func (s *Store) Backups() []BackupEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]BackupEntry, len(s.state.Backups))
	for i, b := range s.state.Backups {
		out[i] = b.Clone()
	}
	return out
}

// Backup returns a copy of the backup with the given id.
func (s *Store) Backup(id string) (BackupEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := findBackup(s.state.Backups, id)
	if !ok {
		return BackupEntry{}, false
	}
	return b.Clone(), true
}

func findBackup(backups []BackupEntry, id string) (BackupEntry, bool) {
	for _, b := range backups {
		if b.ID == id {
			return b, true
		}
	}
	return BackupEntry{}, false
}

// CreateBackup captures a deep copy of the current cities and global settings
// under label and records "Created Backup: {label}".
func (s *Store) CreateBackup(label string) (BackupEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return BackupEntry{}, invalidf("backup label is required")
	}
	var created BackupEntry
	err := s.mutate(OpCreateBackup, label, func(cur State) (State, error) {
		created = BackupEntry{
			ID:        s.newBackupID(),
			Timestamp: s.now().UnixMilli(),
			Label:     label,
			Data: Snapshot{
				Cities: cloneCities(cur.Cities),
				Global: cur.Global.Clone(),
			},
		}
		next := cur
		next.Backups = append([]BackupEntry{created}, cur.Backups...)
		next.Logs = appendLog(cur.Logs, s.newLogEntry("Created Backup: "+label))
		return next, nil
	})
	if err != nil && !IsPersistenceError(err) {
		return BackupEntry{}, err
	}
	return created.Clone(), err
}

// DeleteBackup removes the backup with the given id. Deleting an unknown id is
// a no-op that still persists. No change log entry is written.
func (s *Store) DeleteBackup(id string) error {
	return s.mutate(OpDeleteBackup, id, func(cur State) (State, error) {
		kept := make([]BackupEntry, 0, len(cur.Backups))
		for _, b := range cur.Backups {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		next := cur
		next.Backups = kept
		return next, nil
	})
}

// restore installs deep copies of the backup's content. The backup list is
// left untouched.
func (s *Store) restore(id string) error {
	return s.mutate(OpRestoreBackup, id, func(cur State) (State, error) {
		live, ok := findBackup(cur.Backups, id)
		if !ok {
			return State{}, notFoundf("backup %q", id)
		}
		next := cur
		next.Cities = cloneCities(live.Data.Cities)
		next.Global = live.Data.Global.Clone()
		next.Logs = appendLog(cur.Logs, s.newLogEntry("Restored Backup: "+live.Label))
		return next, nil
	})
}

// reset installs the built-in defaults. Backups are left untouched.
func (s *Store) reset() error {
	return s.mutate(OpReset, "", func(cur State) (State, error) {
		next := cur
		next.Cities = DefaultCities()
		next.Global = DefaultGlobal()
		next.Logs = appendLog(cur.Logs, s.newLogEntry("System Reset to Factory Defaults"))
		return next, nil
	})
}
