package probe

import (
	"fmt"
	"sort"
	"strings"
)

// Rule validates a single field value from a decoded JSON payload.
type Rule func(v any) error

// Shape is a declarative contract for a JSON object payload: the fields
// that must be present, plus optional per-field rules applied after the
// presence check. Rules only fire for fields listed in Required.
type Shape struct {
	Required []string
	Rules    map[string]Rule
}

// Validate checks data against the contract. All missing fields are
// reported together, sorted, before any field rule runs.
func (s Shape) Validate(data map[string]any) error {
	var missing []string
	for _, field := range s.Required {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing fields: [%s]", strings.Join(missing, " "))
	}

	for _, field := range s.Required {
		rule, ok := s.Rules[field]
		if !ok {
			continue
		}
		if err := rule(data[field]); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

// Equals requires the field to be exactly the given string.
func Equals(want string) Rule {
	return func(v any) error {
		got, ok := v.(string)
		if !ok {
			return fmt.Errorf("got %v (%T), want %q", v, v, want)
		}
		if got != want {
			return fmt.Errorf("got %q, want %q", got, want)
		}
		return nil
	}
}

// OneOf requires the field to be one of the given strings.
func OneOf(want ...string) Rule {
	return func(v any) error {
		got, ok := v.(string)
		if ok {
			for _, w := range want {
				if got == w {
					return nil
				}
			}
		}
		return fmt.Errorf("got %v, want one of [%s]", v, strings.Join(want, " "))
	}
}

// Truthy requires the field to be boolean true.
func Truthy() Rule {
	return func(v any) error {
		if b, ok := v.(bool); ok && b {
			return nil
		}
		return fmt.Errorf("got %v, want true", v)
	}
}

// Object requires the field to be a JSON object satisfying the nested
// contract.
func Object(s Shape) Rule {
	return func(v any) error {
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("got %T, want an object", v)
		}
		return s.Validate(m)
	}
}
