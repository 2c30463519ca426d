package analysis

import (
	"runtime"

	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/extract"
	"github.com/matzehuels/injectgraph/pkg/source"
)

// Options configures one analysis run.
type Options struct {
	// Root is the directory to analyze. Required.
	Root string

	// Policy selects the files under Root.
	Policy source.Policy

	// Markers names the annotations the extractors look for.
	Markers extract.Markers

	// DisabledExtractors lists extractor names to skip.
	DisabledExtractors []string

	// SelfEdges keeps edges from a class to itself.
	SelfEdges bool

	// Strict treats files with syntax errors as unparseable. By default
	// tree-sitter's recovered tree is analyzed anyway.
	Strict bool

	// Workers bounds parse parallelism. Zero means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns options for root with the default policy and
// markers.
func DefaultOptions(root string) Options {
	return Options{
		Root:    root,
		Policy:  source.DefaultPolicy(),
		Markers: extract.DefaultMarkers(),
	}
}

// ValidateAndSetDefaults checks the options and fills zero values.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidateRoot(o.Root); err != nil {
		return err
	}
	if len(o.Policy.Extensions) == 0 {
		o.Policy.Extensions = source.DefaultPolicy().Extensions
	}
	if o.Markers == (extract.Markers{}) {
		o.Markers = extract.DefaultMarkers()
	}
	if err := o.Markers.Validate(); err != nil {
		return err
	}
	if err := extract.ValidateNames(o.DisabledExtractors); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "disabled extractors")
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must not be negative")
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return nil
}
