package chain

// Alphabet assigns dense integer ids to strings. Ids are handed out in
// insertion order starting at 0 and are never reused.
type Alphabet struct {
	IDs   map[string]int
	Names []string
}

func NewAlphabet() *Alphabet {
	return &Alphabet{IDs: make(map[string]int)}
}

// Add returns the id of s, interning it first if it was never seen.
func (a *Alphabet) Add(s string) int {
	if id, ok := a.IDs[s]; ok {
		return id
	}
	id := len(a.Names)
	a.IDs[s] = id
	a.Names = append(a.Names, s)
	return id
}

// ID returns the id of s, or -1 if s was never interned.
func (a *Alphabet) ID(s string) int {
	if id, ok := a.IDs[s]; ok {
		return id
	}
	return -1
}

// Name returns the string behind an id.
func (a *Alphabet) Name(id int) string { return a.Names[id] }

func (a *Alphabet) Len() int { return len(a.Names) }
