package input

import (
	"fmt"
	"strings"
)

type Type uint8

const (
	TypeMidi     = Type(0)
	TypeKeyboard = Type(1)

	TypeDefault = TypeMidi
)

var (
	AllTypes = Types{
		TypeMidi,
		TypeKeyboard,
	}
)

func (this *Type) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "midi":
		*this = TypeMidi
		return nil
	case "keyboard", "kbd":
		*this = TypeKeyboard
		return nil
	default:
		return fmt.Errorf("illegal-input-type: %s", plain)
	}
}

func (this Type) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-input-type-%d", this)
	}
	return string(v)
}

func (this Type) MarshalText() (text []byte, err error) {
	switch this {
	case TypeMidi:
		return []byte("midi"), nil
	case TypeKeyboard:
		return []byte("keyboard"), nil
	default:
		return nil, fmt.Errorf("illegal input type: %d", this)
	}
}

func (this *Type) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Types []Type

func (this Types) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Types) String() string {
	return strings.Join(this.Strings(), ",")
}
