package morse

// Mark is a single keyed element.
type Mark byte

const (
	Dit = Mark('.')
	Dah = Mark('-')
)

func (this Mark) String() string {
	return string(this)
}

// Symbols is a sequence of marks which together form one character.
type Symbols string

func (this Symbols) Append(m Mark) Symbols {
	return this + Symbols(m)
}

func (this Symbols) IsZero() bool {
	return len(this) == 0
}

// Decode looks up the given symbols. Only complete characters are matched.
func Decode(symbols Symbols) (string, bool) {
	v, ok := table[symbols]
	return v, ok
}
