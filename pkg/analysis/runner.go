package analysis

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/dag/transform"
	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/extract"
	"github.com/matzehuels/injectgraph/pkg/javaast"
	"github.com/matzehuels/injectgraph/pkg/observability"
	"github.com/matzehuels/injectgraph/pkg/registry"
	"github.com/matzehuels/injectgraph/pkg/resolve"
	"github.com/matzehuels/injectgraph/pkg/source"
)

// SkipReason says why a file contributed no class.
type SkipReason string

const (
	SkipReadFailed    SkipReason = "read-failed"
	SkipParseFailed   SkipReason = "parse-failed"
	SkipNoDeclaration SkipReason = "no-declaration"
)

// Skip is a file that was enumerated but not registered.
type Skip struct {
	Path   string     `json:"path" bson:"path"`
	Reason SkipReason `json:"reason" bson:"reason"`
	Err    string     `json:"error,omitempty" bson:"error,omitempty"`
}

// ClassReport summarizes what happened to one registered class.
type ClassReport struct {
	Name        string       `json:"name"`
	Path        string       `json:"path"` // relative to the root
	Kind        dag.NodeKind `json:"-"`
	Annotations []string     `json:"annotations,omitempty"`
	Candidates  int          `json:"candidates"`
	Unresolved  int          `json:"unresolved"`
	Edges       int          `json:"edges"`
	SelfEdges   int          `json:"self_edges,omitempty"`
}

// Stats records stage timings.
type Stats struct {
	Files         int
	EnumerateTime time.Duration
	ParseTime     time.Duration
	ExtractTime   time.Duration
	LayerTime     time.Duration
}

// Result is the outcome of a successful run.
type Result struct {
	RunID string
	Root  string

	// Graph is ranked and layered. It never contains a cycle.
	Graph *dag.DAG

	Classes   []ClassReport
	Skipped   []Skip
	Conflicts []registry.Outcome

	// ComponentScans maps a class to the literals of its component-scan
	// annotation, whether or not they resolved to an edge.
	ComponentScans map[string][]string

	Stats Stats
}

// Runner executes analysis runs. It holds no per-run state and may be
// shared between goroutines.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run analyzes opts.Root and returns the layered dependency graph.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve root %s", opts.Root)
	}

	res := &Result{
		RunID:          uuid.NewString(),
		Root:           root,
		ComponentScans: map[string][]string{},
	}
	hooks := observability.Analysis()

	// Stage 1: Enumerate
	start := time.Now()
	paths, err := source.Enumerate(ctx, root, opts.Policy)
	if err != nil {
		return nil, err
	}
	res.Stats.Files = len(paths)
	res.Stats.EnumerateTime = time.Since(start)
	hooks.OnEnumerate(ctx, root, len(paths))
	r.Logger.Debug("enumerated sources", "root", root, "files", len(paths))

	// Stage 2: Parse
	start = time.Now()
	files, err := r.parseAll(ctx, root, paths, opts)
	defer func() {
		for _, f := range files {
			if f.unit != nil {
				f.unit.Tree.Close()
			}
		}
	}()
	if err != nil {
		return nil, err
	}
	res.Stats.ParseTime = time.Since(start)

	var declared []*registry.SourceUnit
	for i, f := range files {
		rel := relPath(root, paths[i])
		switch {
		case f.err != nil:
			res.Skipped = append(res.Skipped, Skip{Path: rel, Reason: f.reason, Err: f.err.Error()})
			r.Logger.Warn("skipping source file", "file", rel, "reason", f.reason, "err", f.err)
		case !f.unit.Declared():
			res.Skipped = append(res.Skipped, Skip{Path: rel, Reason: SkipNoDeclaration})
			r.Logger.Debug("no class or interface declaration", "file", rel)
		default:
			declared = append(declared, f.unit)
		}
	}

	// Stage 3: Register
	reg, outcomes := registry.Build(declared, r.Logger)
	res.Conflicts = registry.Conflicts(outcomes)

	// Stage 4: Extract and resolve
	start = time.Now()
	extractors := extract.Default(opts.Markers).Without(opts.DisabledExtractors...)
	classes := reg.Units()
	edgeSets := make([]*resolve.EdgeSet, len(classes))
	for i, u := range classes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cands := extractors.Extract(u)
		for _, c := range cands {
			if c.Via == extract.NameComponentScan {
				res.ComponentScans[u.Name] = append(res.ComponentScans[u.Name], c.Name)
			}
		}
		set := resolve.Resolve(reg, u.Name, cands, resolve.Options{SelfEdges: opts.SelfEdges})
		for _, self := range set.SelfEdges {
			r.Logger.Warn("dropped self-referencing dependency", "class", u.Name, "via", self.Via)
		}
		edgeSets[i] = set

		report := ClassReport{
			Name:        u.Name,
			Path:        u.Rel,
			Kind:        u.Kind,
			Annotations: sortedKeys(extract.AnnotationSet(u.Decl)),
			Candidates:  len(cands),
			Unresolved:  set.Unresolved,
			Edges:       set.Len(),
			SelfEdges:   len(set.SelfEdges),
		}
		res.Classes = append(res.Classes, report)
		r.Logger.Debug("extracted", "class", u.Name, "candidates", report.Candidates, "resolved", report.Edges)
	}
	res.Stats.ExtractTime = time.Since(start)

	// Stage 5: Assemble
	start = time.Now()
	g, err := Assemble(classes, edgeSets, dag.Metadata{
		MetaRoot:           root,
		MetaRunID:          res.RunID,
		MetaComponentScans: res.ComponentScans,
	})
	if err != nil {
		return nil, err
	}
	hooks.OnAssemble(ctx, g.NodeCount(), g.EdgeCount(), time.Since(start))

	// Stage 6: Layer
	start = time.Now()
	hooks.OnLayerStart(ctx, g.NodeCount())
	err = transform.Layer(g)
	res.Stats.LayerTime = time.Since(start)
	hooks.OnLayerComplete(ctx, res.Stats.LayerTime, err)
	if err != nil {
		var cycle *transform.CycleError
		if stderrors.As(err, &cycle) {
			return nil, errors.Wrap(errors.ErrCodeCycleDetected, cycle, "dependency graph is cyclic")
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "layer graph")
	}

	res.Graph = g
	r.Logger.Info("analyzed sources",
		"files", res.Stats.Files,
		"classes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"skipped", len(res.Skipped))
	return res, nil
}

// parsed holds the per-file outcome of stage 2.
type parsed struct {
	unit   *registry.SourceUnit
	reason SkipReason
	err    error
}

// parseAll reads and parses paths with bounded parallelism. The result is
// index-aligned with paths so later stages see files in enumeration order.
func (r *Runner) parseAll(ctx context.Context, root string, paths []string, opts Options) ([]parsed, error) {
	results := make([]parsed, len(paths))
	parser := &javaast.Parser{Strict: opts.Strict}
	hooks := observability.Analysis()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(opts.Workers, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			hooks.OnParseStart(gctx, path)

			src, err := os.ReadFile(path)
			if err != nil {
				results[i] = parsed{reason: SkipReadFailed, err: err}
				hooks.OnParseComplete(gctx, path, time.Since(start), err)
				return nil
			}
			tree, err := parser.Parse(gctx, src)
			hooks.OnParseComplete(gctx, path, time.Since(start), err)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				results[i] = parsed{reason: SkipParseFailed, err: err}
				return nil
			}
			results[i] = parsed{unit: registry.NewUnit(path, relPath(root, path), tree)}
			return nil
		})
	}
	return results, g.Wait()
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
