package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/io"
)

var shopSources = map[string]string{
	"shop/OrderService.java": `package shop;

@Service
@RequiredArgsConstructor
public class OrderService {
    @NonNull private final OrderRepository orders;
    @NonNull private final PriceCalculator prices;
}
`,
	"shop/OrderRepository.java": `package shop;

public interface OrderRepository extends JpaRepository<Order, Long> {}
`,
	"shop/PriceCalculator.java": `package shop;

public class PriceCalculator {}
`,
	"shop/Order.java": `package shop;

public class Order {}
`,
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// execute runs the CLI with args and returns captured command output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	root := writeTree(t, shopSources)
	jsonOut := filepath.Join(t.TempDir(), "graph.json")

	out, err := execute(t, "analyze", root, "-q", "--json", jsonOut)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, want := range []string{"4 classes", "3 edges", "OrderService", "Layer"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	g, err := io.ImportJSON(jsonOut)
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasEdge("OrderService", "OrderRepository", dag.EdgeOrdinary) {
		t.Error("missing OrderService -> OrderRepository")
	}
	if !g.HasEdge("Order", "OrderRepository", dag.EdgeOrdinary) {
		t.Error("missing repository entity edge Order -> OrderRepository")
	}
}

func TestAnalyzeConfigOverrides(t *testing.T) {
	files := map[string]string{
		"injectgraph.toml": "[graph]\ndisabled_extractors = [\"required-args\"]\n",
	}
	for k, v := range shopSources {
		files[k] = v
	}
	root := writeTree(t, files)

	out, err := execute(t, "analyze", root, "-q")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1 edges") {
		t.Errorf("config should disable required-args:\n%s", out)
	}

	// --disable adds to the configured list.
	out, err = execute(t, "analyze", root, "-q", "--disable", "repository-entity")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "0 edges") {
		t.Errorf("flag should extend disabled extractors:\n%s", out)
	}
}

func TestAnalyzeCycle(t *testing.T) {
	root := writeTree(t, map[string]string{
		"A.java": "@RequiredArgsConstructor\npublic class A { @NonNull private final B b; }\n",
		"B.java": "@RequiredArgsConstructor\npublic class B { @NonNull private final A a; }\n",
	})

	out, err := execute(t, "analyze", root, "-q")
	if !errors.Is(err, errors.ErrCodeCycleDetected) {
		t.Fatalf("analyze error = %v, want CYCLE_DETECTED", err)
	}
	if errors.ExitCode(err) != 3 {
		t.Errorf("ExitCode = %d, want 3", errors.ExitCode(err))
	}
	if !strings.Contains(out, "A → B → A") {
		t.Errorf("cycle not printed:\n%s", out)
	}
}

func TestAnalyzeBadRoot(t *testing.T) {
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "missing"), "-q")
	if errors.ExitCode(err) != 2 {
		t.Errorf("ExitCode(%v) = %d, want 2", err, errors.ExitCode(err))
	}
}

func TestRenderFromJSON(t *testing.T) {
	root := writeTree(t, shopSources)
	dir := t.TempDir()
	jsonOut := filepath.Join(dir, "graph.json")
	if _, err := execute(t, "analyze", root, "-q", "--json", jsonOut); err != nil {
		t.Fatal(err)
	}

	dotOut := filepath.Join(dir, "deps.dot")
	if _, err := execute(t, "render", jsonOut, "-f", "dot", "-o", dotOut, "--rankdir", "LR"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(dotOut)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.Contains(dot, "rankdir=LR") || !strings.Contains(dot, `"OrderService" -> "OrderRepository"`) {
		t.Errorf("unexpected DOT:\n%s", dot)
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	_, err := execute(t, "render", t.TempDir(), "-f", "pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("render -f pdf error = %v", err)
	}
}

func TestPublishToFile(t *testing.T) {
	root := writeTree(t, shopSources)
	target := filepath.Join(t.TempDir(), "published.json")

	out, err := execute(t, "publish", root, "-q", "--to", target)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !strings.Contains(out, "Published run") {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"OrderService"`) {
		t.Error("published document lacks the graph")
	}
}

func TestPublishRequiresTarget(t *testing.T) {
	_, err := execute(t, "publish", t.TempDir())
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("publish without --to error = %v", err)
	}
}
