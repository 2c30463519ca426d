package source

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/matzehuels/injectgraph/pkg/errors"
)

// Policy controls which files [Enumerate] returns.
type Policy struct {
	// Extensions lists accepted file extensions, including the dot.
	Extensions []string

	// Exclude holds gitignore-style patterns matched against paths
	// relative to the root ("generated/**", "*Mock.java").
	Exclude []string

	// SkipTests drops files under a "test" source set directory and files
	// named like unit tests (FooTest.java, FooTests.java, FooIT.java).
	SkipTests bool

	// RespectGitignore applies .gitignore files found under the root.
	RespectGitignore bool
}

// DefaultPolicy returns the policy used when no configuration is given.
func DefaultPolicy() Policy {
	return Policy{
		Extensions:       []string{".java"},
		SkipTests:        true,
		RespectGitignore: true,
	}
}

// Validate checks the policy's extensions and exclude patterns.
func (p Policy) Validate() error {
	if len(p.Extensions) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one source extension is required")
	}
	for _, ext := range p.Extensions {
		if err := errors.ValidateExtension(ext); err != nil {
			return err
		}
	}
	for _, pat := range p.Exclude {
		if err := errors.ValidatePath(strings.TrimPrefix(pat, "!")); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid exclude pattern %q", pat)
		}
	}
	return nil
}

var skipDirs = map[string]bool{
	".git": true, ".hg": true, ".svn": true, ".idea": true, ".gradle": true,
	"node_modules": true, "target": true, "build": true, "out": true,
}

var testSuffixes = []string{"Test", "Tests", "IT"}

// Enumerate returns the absolute, sorted paths of the files under root
// selected by p. The root must be an existing directory.
func Enumerate(ctx context.Context, root string, p Policy) ([]string, error) {
	if err := errors.ValidateRoot(root); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve root %s", root)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "root directory not found: %s", root)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "stat root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "root is not a directory: %s", root)
	}

	var excluded *ignore.GitIgnore
	if len(p.Exclude) > 0 {
		excluded = ignore.CompileIgnoreLines(p.Exclude...)
	}
	gitignores := map[string]*ignore.GitIgnore{}

	var files []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == abs {
				return walkErr
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, _ := filepath.Rel(abs, path)
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == abs {
				loadGitignore(gitignores, p, path, "")
				return nil
			}
			if skipDirs[d.Name()] || ignored(gitignores, excluded, rel+"/") {
				return filepath.SkipDir
			}
			if p.SkipTests && d.Name() == "test" {
				return filepath.SkipDir
			}
			loadGitignore(gitignores, p, path, rel)
			return nil
		}

		if !d.Type().IsRegular() || !slices.Contains(p.Extensions, filepath.Ext(path)) {
			return nil
		}
		if p.SkipTests && isTestFile(d.Name()) {
			return nil
		}
		if ignored(gitignores, excluded, rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "walk %s", root)
	}

	slices.Sort(files)
	return files, nil
}

// loadGitignore compiles dir/.gitignore, keyed by the directory's path
// relative to the root ("" for the root itself).
func loadGitignore(into map[string]*ignore.GitIgnore, p Policy, dir, rel string) {
	if !p.RespectGitignore {
		return
	}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return
	}
	into[rel] = gi
}

// ignored reports whether rel is matched by the exclude patterns or by any
// .gitignore in one of its ancestor directories. Gitignore patterns are
// matched relative to the directory that holds the file.
func ignored(gitignores map[string]*ignore.GitIgnore, excluded *ignore.GitIgnore, rel string) bool {
	if excluded != nil && excluded.MatchesPath(rel) {
		return true
	}
	for dir, gi := range gitignores {
		sub := rel
		if dir != "" {
			prefix := dir + "/"
			if !strings.HasPrefix(rel, prefix) {
				continue
			}
			sub = strings.TrimPrefix(rel, prefix)
		}
		if gi.MatchesPath(sub) {
			return true
		}
	}
	return false
}

func isTestFile(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	for _, suffix := range testSuffixes {
		if strings.HasSuffix(stem, suffix) && len(stem) > len(suffix) {
			return true
		}
	}
	return false
}
