package values

import "strings"

// StyleBlock is an insertion-ordered mapping from kebab-case property name
// to string value, first-class and mergeable with <<.
type StyleBlock struct {
	keys   []string
	values map[string]string
}

// NewStyleBlock creates an empty style block.
func NewStyleBlock() *StyleBlock {
	return &StyleBlock{values: map[string]string{}}
}

// Set assigns property to value, appending it to the insertion order the
// first time it's seen and overwriting in place thereafter.
func (s *StyleBlock) Set(property, value string) {
	if _, ok := s.values[property]; !ok {
		s.keys = append(s.keys, property)
	}
	s.values[property] = value
}

// Get returns the value for property and whether it was present.
func (s *StyleBlock) Get(property string) (string, bool) {
	v, ok := s.values[property]
	return v, ok
}

// Keys returns the properties in insertion order.
func (s *StyleBlock) Keys() []string { return append([]string(nil), s.keys...) }

// Merge returns a new StyleBlock whose entries are s's entries followed
// by other's entries, with other's values overwriting s's in place for
// shared keys (spec.md's << semantics).
func (s *StyleBlock) Merge(other *StyleBlock) *StyleBlock {
	out := NewStyleBlock()
	for _, k := range s.keys {
		out.Set(k, s.values[k])
	}
	for _, k := range other.keys {
		out.Set(k, other.values[k])
	}
	return out
}

// String renders the style block as "prop: value; prop2: value2;".
func (s *StyleBlock) String() string {
	var sb strings.Builder
	for _, k := range s.keys {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(s.values[k])
		sb.WriteString("; ")
	}
	return strings.TrimSpace(sb.String())
}

// ToMap returns a plain map snapshot, for CompileResult output.
func (s *StyleBlock) ToMap() map[string]string {
	out := make(map[string]string, len(s.keys))
	for _, k := range s.keys {
		out[k] = s.values[k]
	}
	return out
}

// KebabToCamel converts "stroke-width" to "strokeWidth" for StyleBlock
// property access (x.fooBar reads the "foo-bar" property).
func KebabToCamel(kebab string) string {
	parts := strings.Split(kebab, "-")
	var sb strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			sb.WriteString(p)
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

// CamelToKebab converts "strokeWidth" back to "stroke-width", the inverse
// of KebabToCamel, used to resolve a StyleBlock property access.
func CamelToKebab(camel string) string {
	var sb strings.Builder
	for i, r := range camel {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
