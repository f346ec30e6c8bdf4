package rdsgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayName resolves spec.md §4.9/§6's name(x) function: "E{id}" for an
// equivalence class, "P{id}" for a pattern, the raw symbol for a
// terminal, "*" for Start, "#" for End. Unlike LexiconUnit.String, this
// only needs the id (Pattern/EquivalenceClass payloads never need their
// children's own names resolved recursively — the compact id-based name
// is sufficient at every nesting level, matching the original madios
// printNode/printEquivalenceClass helpers).
func (g *Graph) DisplayName(id NodeID) string {
	n, err := g.node(id)
	if err != nil {
		return "?"
	}
	return n.Name(id)
}

// DisplayPattern renders a Pattern's children using sep as the separator
// between child names ("" for the compact form, " - " for verbose —
// spec.md §6).
func (g *Graph) DisplayPattern(id NodeID, sep string) (string, error) {
	n, err := g.node(id)
	if err != nil {
		return "", err
	}
	if n.Kind() != KindPattern {
		return "", ErrNotPattern
	}
	parts := make([]string, len(n.Lexicon.Children()))
	for i, c := range n.Lexicon.Children() {
		parts[i] = g.DisplayName(c)
	}
	return strings.Join(parts, sep), nil
}

// DisplayEquivalenceClass renders an EquivalenceClass's members,
// comma-separated with no spaces (spec.md §6).
func (g *Graph) DisplayEquivalenceClass(id NodeID) (string, error) {
	n, err := g.node(id)
	if err != nil {
		return "", err
	}
	if n.Kind() != KindEquivalenceClass {
		return "", ErrNotEquivalenceClass
	}
	parts := make([]string, len(n.Lexicon.Members()))
	for i, m := range n.Lexicon.Members() {
		parts[i] = g.DisplayName(m)
	}
	return strings.Join(parts, ","), nil
}

// String renders a human-readable debug dump: every node with its kind
// tag and back-edge (parent) count, followed by every path as
// name-bracketed segments, per spec.md §6's display() requirement.
func (g *Graph) String() string {
	var b strings.Builder
	for id, n := range g.nodes {
		fmt.Fprintf(&b, "%4d [%s] %s (parents=%d)\n", id, n.Kind(), n.Name(NodeID(id)), len(n.Parents))
	}
	for p, path := range g.paths {
		b.WriteString("path ")
		b.WriteString(strconv.Itoa(p))
		b.WriteString(": ")
		for _, id := range path {
			b.WriteString("[")
			b.WriteString(g.DisplayName(id))
			b.WriteString("]")
		}
		b.WriteString("\n")
	}
	return b.String()
}
