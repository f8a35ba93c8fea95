// internal/conditions/flatten.go
package conditions

import "github.com/solatis/showwhen/internal/types"

// Flatten normalizes a condition tree to at most one group level: every
// simple leaf at any depth is collected into a single group carrying the
// root's logic. Inner group logic values are discarded. Empty and simple
// conditions pass through unchanged; nil children drop out.
//
// Both the parser and the serializer normalize through this function, so
// the one-level shape is an invariant of everything that crosses the wire.
func Flatten(c types.Condition) types.Condition {
	switch n := c.(type) {
	case *types.Group:
		if n == nil {
			return nil
		}
		flat := &types.Group{Logic: n.Logic}
		flat.Conditions = appendLeaves(n, flat.Conditions)
		return flat
	default:
		return c
	}
}

func appendLeaves(g *types.Group, out []types.Condition) []types.Condition {
	for _, child := range g.Conditions {
		switch c := child.(type) {
		case *types.Simple:
			if c != nil {
				out = append(out, c)
			}
		case *types.Group:
			if c != nil {
				out = appendLeaves(c, out)
			}
		}
	}
	return out
}
