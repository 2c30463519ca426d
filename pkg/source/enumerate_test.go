package source

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/injectgraph/pkg/errors"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	abs, _ := filepath.Abs(root)
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(abs, p)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestEnumerate(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main/java/shop/OrderService.java":     "class OrderService {}",
		"src/main/java/shop/Order.java":            "class Order {}",
		"src/main/java/shop/README.md":             "# docs",
		"src/test/java/shop/OrderServiceTest.java": "class OrderServiceTest {}",
		"src/main/java/shop/OrderIT.java":          "class OrderIT {}",
		"src/main/java/shop/generated/Stub.java":   "class Stub {}",
		"target/classes/Leftover.java":             "class Leftover {}",
		".gitignore":                               "ignored/\n",
		"ignored/Skipped.java":                     "class Skipped {}",
	})

	tests := []struct {
		name   string
		policy Policy
		want   []string
	}{
		{
			name:   "default policy",
			policy: DefaultPolicy(),
			want: []string{
				"src/main/java/shop/Order.java",
				"src/main/java/shop/OrderService.java",
				"src/main/java/shop/generated/Stub.java",
			},
		},
		{
			name:   "tests included",
			policy: Policy{Extensions: []string{".java"}, RespectGitignore: true},
			want: []string{
				"src/main/java/shop/Order.java",
				"src/main/java/shop/OrderIT.java",
				"src/main/java/shop/OrderService.java",
				"src/main/java/shop/generated/Stub.java",
				"src/test/java/shop/OrderServiceTest.java",
			},
		},
		{
			name:   "gitignore disabled",
			policy: Policy{Extensions: []string{".java"}, SkipTests: true},
			want: []string{
				"ignored/Skipped.java",
				"src/main/java/shop/Order.java",
				"src/main/java/shop/OrderService.java",
				"src/main/java/shop/generated/Stub.java",
			},
		},
		{
			name: "exclude pattern",
			policy: Policy{
				Extensions:       []string{".java"},
				Exclude:          []string{"generated/"},
				SkipTests:        true,
				RespectGitignore: true,
			},
			want: []string{
				"src/main/java/shop/Order.java",
				"src/main/java/shop/OrderService.java",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Enumerate(context.Background(), root, tt.policy)
			if err != nil {
				t.Fatalf("Enumerate() error = %v", err)
			}
			if rel := relPaths(t, root, got); !slices.Equal(rel, tt.want) {
				t.Errorf("Enumerate() = %v, want %v", rel, tt.want)
			}
		})
	}
}

func TestEnumerateNestedGitignore(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app/.gitignore":        "*Generated.java\n",
		"app/Main.java":         "class Main {}",
		"app/MapGenerated.java": "class MapGenerated {}",
		"MapGenerated.java":     "class MapGenerated {}",
	})

	got, err := Enumerate(context.Background(), root, DefaultPolicy())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"MapGenerated.java", "app/Main.java"}
	if rel := relPaths(t, root, got); !slices.Equal(rel, want) {
		t.Errorf("Enumerate() = %v, want %v", rel, want)
	}
}

func TestEnumerateErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "Plain.java")
	if err := os.WriteFile(file, []byte("class Plain {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		root   string
		policy Policy
		code   errors.Code
	}{
		{"empty root", "", DefaultPolicy(), errors.ErrCodeInvalidPath},
		{"missing root", filepath.Join(t.TempDir(), "nope"), DefaultPolicy(), errors.ErrCodeFileNotFound},
		{"root is a file", file, DefaultPolicy(), errors.ErrCodeInvalidPath},
		{"no extensions", t.TempDir(), Policy{}, errors.ErrCodeInvalidInput},
		{"bad extension", t.TempDir(), Policy{Extensions: []string{"java"}}, errors.ErrCodeInvalidInput},
		{"escaping exclude", t.TempDir(), Policy{Extensions: []string{".java"}, Exclude: []string{"../x"}}, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Enumerate(context.Background(), tt.root, tt.policy)
			if !errors.Is(err, tt.code) {
				t.Errorf("Enumerate() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestEnumerateCanceled(t *testing.T) {
	root := writeTree(t, map[string]string{"A.java": "class A {}"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Enumerate(ctx, root, DefaultPolicy()); err != context.Canceled {
		t.Errorf("Enumerate() error = %v, want context.Canceled", err)
	}
}

func TestIsTestFile(t *testing.T) {
	tests := map[string]bool{
		"OrderServiceTest.java":  true,
		"OrderServiceTests.java": true,
		"CheckoutIT.java":        true,
		"Test.java":              false,
		"Contest.java":           false,
		"OrderService.java":      false,
	}
	for name, want := range tests {
		if got := isTestFile(name); got != want {
			t.Errorf("isTestFile(%q) = %v, want %v", name, got, want)
		}
	}
}
