package source

// StringID identifies an interned string; NoStringID is "".
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates identifier text so scan results do not pin the
// file buffers they were sliced from. It is not goroutine-safe.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// InternBytes returns the id for b, copying b on first sight.
func (i *Interner) InternBytes(b []byte) StringID {
	if id, ok := i.index[string(b)]; ok {
		return id
	}
	s := string(b)
	id := StringID(len(i.byID)) // #nosec G115 -- one id per distinct identifier
	i.byID = append(i.byID, s)
	i.index[s] = id
	return id
}

// Lookup returns the string for id.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}
