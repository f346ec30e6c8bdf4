package pcfg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adios/adios/rdsgraph"
)

// Emit implements spec.md §4.9's emission rules: EquivalenceClass rules
// first, then Pattern rules, then S-rules, each block in ascending
// node-id order, one production per line.
func (gram *Grammar) Emit(w io.Writer) error {
	for id := rdsgraph.NodeID(0); int(id) < gram.g.NumNodes(); id++ {
		kind, err := gram.g.Kind(id)
		if err != nil {
			return err
		}
		if kind != rdsgraph.KindEquivalenceClass {
			continue
		}
		if err := gram.emitEquivalenceClass(w, id); err != nil {
			return err
		}
	}

	for id := rdsgraph.NodeID(0); int(id) < gram.g.NumNodes(); id++ {
		kind, err := gram.g.Kind(id)
		if err != nil {
			return err
		}
		if kind != rdsgraph.KindPattern {
			continue
		}
		if err := gram.emitPattern(w, id); err != nil {
			return err
		}
	}

	return gram.emitStartRules(w)
}

func (gram *Grammar) emitEquivalenceClass(w io.Writer, id rdsgraph.NodeID) error {
	n, err := gram.g.Node(id)
	if err != nil {
		return err
	}
	members := n.Lexicon.Members()
	if len(members) == 0 {
		return nil
	}

	uses := gram.ecMemberUses[id]
	total := 0
	for _, c := range uses {
		total += c
	}

	lhs := gram.g.DisplayName(id)
	for _, m := range members {
		var prob float64
		if total > 0 {
			prob = float64(uses[m]) / float64(total)
		} else {
			prob = 1.0 / float64(len(members)) // no observed uses: fall back to uniform
		}
		if _, err := fmt.Fprintf(w, "%s -> %s [%s]\n", lhs, gram.g.DisplayName(m), formatProb(prob)); err != nil {
			return err
		}
	}
	return nil
}

func (gram *Grammar) emitPattern(w io.Writer, id rdsgraph.NodeID) error {
	n, err := gram.g.Node(id)
	if err != nil {
		return err
	}
	children := n.Lexicon.Children()
	if len(children) == 0 {
		return nil
	}
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = gram.g.DisplayName(c)
	}

	lhs := gram.g.DisplayName(id)
	rhs := strings.Join(names, " ")
	_, err = fmt.Fprintf(w, "%s -> %s [%s]\n", lhs, rhs, formatProb(1.0))
	return err
}

func (gram *Grammar) emitStartRules(w io.Writer) error {
	for _, r := range gram.sRules {
		names := make([]string, len(r.seq))
		for i, id := range r.seq {
			names[i] = gram.g.DisplayName(id)
		}
		prob := 1.0
		if gram.totalSentences > 0 {
			prob = float64(r.count) / float64(gram.totalSentences)
		}
		if _, err := fmt.Fprintf(w, "S -> %s [%s]\n", strings.Join(names, " "), formatProb(prob)); err != nil {
			return err
		}
	}
	return nil
}

// formatProb renders a probability as a plain base-10 decimal, always
// with at least one digit after the point (spec.md §6: "plain base-10
// floating-point with default precision").
func formatProb(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
