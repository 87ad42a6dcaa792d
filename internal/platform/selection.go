package platform

// Selection holds one independent flag per known platform. It is a value
// type; every mutation returns a new Selection.
type Selection struct {
	flags [3]bool
}

// NewSelection returns a selection with the given platforms enabled.
func NewSelection(ids ...ID) Selection {
	var s Selection
	for _, id := range ids {
		s = s.With(id, true)
	}
	return s
}

// AllSelected enables every known platform.
func AllSelected() Selection {
	return NewSelection(Known...)
}

// Has reports whether id is active. Unclassified is never active.
func (s Selection) Has(id ID) bool {
	if id <= Unclassified || int(id) > len(s.flags) {
		return false
	}
	return s.flags[id-1]
}

// With returns a copy with id set to on.
func (s Selection) With(id ID, on bool) Selection {
	if id <= Unclassified || int(id) > len(s.flags) {
		return s
	}
	s.flags[id-1] = on
	return s
}

// Toggle flips id.
func (s Selection) Toggle(id ID) Selection {
	return s.With(id, !s.Has(id))
}

// Active lists enabled platforms in classification order.
func (s Selection) Active() []ID {
	var ids []ID
	for _, id := range Known {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s Selection) Empty() bool {
	return len(s.Active()) == 0
}

// ParseSelection builds a selection from config keys such as "leetcode".
func ParseSelection(names []string) (Selection, error) {
	var s Selection
	for _, name := range names {
		id, err := ParseID(name)
		if err != nil {
			return Selection{}, err
		}
		s = s.With(id, true)
	}
	return s, nil
}

// Keys returns the config keys of the active platforms.
func (s Selection) Keys() []string {
	keys := []string{}
	for _, id := range s.Active() {
		keys = append(keys, id.String())
	}
	return keys
}
