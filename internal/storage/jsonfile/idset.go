package jsonfile

import "log/slog"

// IDSet is a persisted, append-only set of item identifiers, stored as a
// JSON array. Order of first insertion is preserved on disk.
type IDSet struct {
	path  string
	ids   []string
	index map[string]struct{}
}

// NewIDSet opens (or initializes) the set stored at dir/name.
func NewIDSet(dir, name string, logger *slog.Logger) (*IDSet, error) {
	s := &IDSet{
		path:  join(dir, name),
		index: make(map[string]struct{}),
	}

	if _, err := load(s.path, &s.ids); err != nil {
		return nil, err
	}
	for _, id := range s.ids {
		s.index[id] = struct{}{}
	}

	logger.Info("initialized id set", "file", name, "size", len(s.ids))
	return s, nil
}

// Contains reports whether id has been recorded.
func (s *IDSet) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Add records id and flushes the whole set to disk before returning.
// Adding an already-present id is a no-op.
func (s *IDSet) Add(id string) error {
	if s.Contains(id) {
		return nil
	}

	s.ids = append(s.ids, id)
	s.index[id] = struct{}{}
	return save(s.path, s.ids)
}

// Len returns the number of recorded ids.
func (s *IDSet) Len() int {
	return len(s.ids)
}
