package nodelink

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/errors"
)

// Label modes.
const (
	LabelShort = "short" // type name only
	LabelFull  = "full"  // type name and source path
)

// Options configures DOT generation.
type Options struct {
	// RankDir is the Graphviz layout direction: TB (default), BT, LR or RL.
	RankDir string
	// BgColor is the graph background (default "transparent").
	BgColor string
	// Label selects LabelShort (default) or LabelFull node labels.
	Label string
	// Detailed appends rank, row and all metadata to node labels.
	Detailed bool
	// SameRank pins nodes of one layer row to the same Graphviz rank.
	SameRank bool
}

var rankDirs = []string{"TB", "BT", "LR", "RL"}

// Validate checks option values, filling defaults for empty ones.
func (o *Options) Validate() error {
	if o.RankDir == "" {
		o.RankDir = "TB"
	}
	o.RankDir = strings.ToUpper(o.RankDir)
	if !slices.Contains(rankDirs, o.RankDir) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid rankdir %q (want one of %v)", o.RankDir, rankDirs)
	}
	if o.BgColor == "" {
		o.BgColor = "transparent"
	}
	if o.Label == "" {
		o.Label = LabelShort
	}
	if o.Label != LabelShort && o.Label != LabelFull {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid label mode %q (want short or full)", o.Label)
	}
	return nil
}

// ToDOT converts g to Graphviz DOT source. Invalid options fall back to
// their defaults; call [Options.Validate] first to reject them instead.
func ToDOT(g *dag.DAG, opts Options) string {
	if err := opts.Validate(); err != nil {
		opts = Options{Detailed: opts.Detailed, SameRank: opts.SameRank}
		_ = opts.Validate()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.RankDir)
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", opts.BgColor)
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#555555\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	nodes := g.SortedNodes()
	for _, n := range nodes {
		label := fmtLabel(*n, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(*n, label), ", "))
	}

	if opts.SameRank && len(nodes) > 0 {
		buf.WriteString("\n")
		for row := 0; row <= g.MaxRow(); row++ {
			ids := dag.NodeIDs(g.NodesInRow(row))
			if len(ids) < 2 {
				continue
			}
			slices.Sort(ids)
			quoted := make([]string, len(ids))
			for i, id := range ids {
				quoted[i] = fmt.Sprintf("%q", id)
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.SortedEdges() {
		if attrs := edgeAttrs(e); len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n dag.Node, opts Options) string {
	label := n.ID
	if opts.Label == LabelFull {
		if path, ok := n.Meta["path"].(string); ok && path != "" {
			label += "\n" + path
		}
	}
	if !opts.Detailed {
		return label
	}

	parts := []string{fmt.Sprintf("rank: %d", n.Rank), fmt.Sprintf("row: %d", n.Row)}
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		if k == "path" && opts.Label == LabelFull {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n dag.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.IsInterface() {
		attrs = append(attrs, "shape=ellipse", "style=filled", "fillcolor=\"#eef3fb\"")
	}
	return attrs
}

func edgeAttrs(e dag.Edge) []string {
	if e.Kind == dag.EdgeInheritance {
		return []string{"style=dashed", "arrowhead=empty"}
	}
	return nil
}
