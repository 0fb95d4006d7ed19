package pdh

import (
	"fmt"
	"regexp"
)

// CounterPath identifies one object/instance/counter triple, optionally
// prefixed with a machine name. The rendered form is
// \\machine\object(instance)\counter, with the machine prefix omitted when
// Machine is empty and the parenthesis omitted when Instance is empty.
type CounterPath struct {
	Machine  string
	Object   string
	Instance string
	Counter  string
}

// String renders the counter path in the form the subsystem consumes.
func (p CounterPath) String() string {
	prefix := ""
	if p.Machine != "" {
		prefix = fmt.Sprintf(`\\%s`, p.Machine)
	}
	instance := ""
	if p.Instance != "" {
		instance = fmt.Sprintf("(%s)", p.Instance)
	}
	return fmt.Sprintf(`%s\%s%s\%s`, prefix, p.Object, instance, p.Counter)
}

var instancePattern = regexp.MustCompile(`\(([^()]*)\)`)

// InstanceFromPath extracts the parenthesized instance token from a rendered
// counter path, or "" when the path has none. It matches the last
// parenthesized group so counter names containing parentheses earlier in the
// path do not confuse it. An instance name that itself contains parentheses
// is ambiguous in this encoding; the subsystem offers no escaping, so that
// case is not handled.
func InstanceFromPath(path string) string {
	matches := instancePattern.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}
