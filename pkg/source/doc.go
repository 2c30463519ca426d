// Package source selects the source files an analysis run reads.
//
// [Enumerate] walks an explicit root directory and returns the absolute
// paths of every file that passes a [Policy]: extension filter, optional
// test-file skipping, .gitignore rules found under the root, and extra
// gitignore-style exclude patterns. The result is sorted so that two runs
// over the same tree see the files in the same order.
//
// Version-control and build output directories (.git, target, build,
// node_modules, ...) are never descended into.
package source
