package util

import "strings"

const (
	inputsSuffix  = ":inputs"
	outputsSuffix = ":outputs"
)

// QualifiedName joins package, type and method as "pkg.Type.Method".
// Empty parts are dropped so QualifiedName("", "Cache", "Store") == "Cache.Store".
func QualifiedName(parts ...string) string {
	s := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			s = append(s, p)
		}
	}
	return strings.Join(s, ".")
}

// InputsKey is the list holding rendered call arguments for a method.
func InputsKey(name string) string { return name + inputsSuffix }

// OutputsKey is the list holding rendered call results for a method.
func OutputsKey(name string) string { return name + outputsSuffix }
