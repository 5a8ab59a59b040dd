package interact

// Actuator is anything with a single interaction.
type Actuator interface {
	// Interact triggers the action and reports whether it was accepted.
	Interact() bool
}

// Node is a surface in the scene hierarchy.
type Node interface {
	Name() string
	HasTag(tag string) bool
	Parent() (Node, bool)
	Actuator() (Actuator, bool)
}

// DefaultMaxDepth bounds ancestor walks when no depth is configured.
const DefaultMaxDepth = 8

// Tagged reports whether n or its immediate parent carries tag.
func Tagged(n Node, tag string) bool {
	if n == nil {
		return false
	}
	if n.HasTag(tag) {
		return true
	}
	p, ok := n.Parent()
	return ok && p != nil && p.HasTag(tag)
}

// FindActuator walks from n up through at most maxDepth ancestors and
// returns the first node exposing an actuator.
func FindActuator(n Node, maxDepth int) (Actuator, Node, bool) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	for depth := 0; n != nil && depth <= maxDepth; depth++ {
		if a, ok := n.Actuator(); ok && a != nil {
			return a, n, true
		}
		p, ok := n.Parent()
		if !ok {
			break
		}
		n = p
	}
	return nil, nil, false
}
