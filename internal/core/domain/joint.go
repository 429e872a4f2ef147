package domain

import "strings"

// DefaultJointPrefixes are the rig namespaces stripped before joints are compared.
// Mixamo exports use a colon in FBX and an underscore after glTF conversion.
var DefaultJointPrefixes = []string{"mixamorig:", "mixamorig_"}

// JointNameNormalizer canonicalises joint names so that skeletons exported by
// different tools can be matched by name.
//
// Matching is exact after prefix stripping. Names in any other convention do
// not match; there is no case folding or fuzzy comparison.
type JointNameNormalizer struct {
	// Prefixes are stripped from the start of a name, repeatedly, until none applies.
	Prefixes []string
}

// NewJointNameNormalizer creates a normalizer for the given prefixes.
// A nil or empty list falls back to DefaultJointPrefixes.
func NewJointNameNormalizer(prefixes []string) JointNameNormalizer {
	if len(prefixes) == 0 {
		prefixes = DefaultJointPrefixes
	}
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return JointNameNormalizer{Prefixes: cleaned}
}

// Normalize returns the canonical form of a joint name.
// Stripping repeats so that Normalize(Normalize(x)) == Normalize(x).
func (n JointNameNormalizer) Normalize(name string) string {
	for {
		stripped := false
		for _, p := range n.Prefixes {
			if p != "" && strings.HasPrefix(name, p) {
				name = name[len(p):]
				stripped = true
			}
		}
		if !stripped {
			return name
		}
	}
}

// Same reports whether two joint names identify the same joint.
func (n JointNameNormalizer) Same(a, b string) bool {
	return n.Normalize(a) == n.Normalize(b)
}
