package setflag

import (
	"fmt"
	"strings"
)

// New creates a flag.Value accepting a comma-separated subset of options.
// Values come back in the order they were given, so it works for things like
// column selection where order matters.
func New(options ...string) *SetFlag {
	sf := &SetFlag{
		seen:    make(map[string]struct{}, len(options)),
		options: make(map[string]struct{}, len(options)),
	}
	for _, opt := range options {
		sf.options[opt] = struct{}{}
	}
	return sf
}

type SetFlag struct {
	options map[string]struct{}
	seen    map[string]struct{}
	values  []string
}

func (sf *SetFlag) List() []string {
	return sf.values
}

func (sf *SetFlag) String() string {
	return strings.Join(sf.values, ", ")
}

func (sf *SetFlag) Set(value string) error {
	values := []string{value}
	if strings.Contains(value, ",") {
		values = strings.Split(value, ",")
		for i, str := range values {
			values[i] = strings.TrimSpace(str)
		}
	}
	for _, value := range values {
		if _, exists := sf.options[value]; !exists {
			return fmt.Errorf("unsupported value '%s'", value)
		}
		if _, dup := sf.seen[value]; dup {
			continue
		}
		sf.seen[value] = struct{}{}
		sf.values = append(sf.values, value)
	}
	return nil
}
