package sink

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/injectgraph/pkg/analysis"
	"github.com/matzehuels/injectgraph/pkg/errors"
	gio "github.com/matzehuels/injectgraph/pkg/io"
	"github.com/matzehuels/injectgraph/pkg/observability"
)

// Document is the unit written to every backend.
type Document struct {
	ID             string              `json:"id" bson:"_id"`
	Root           string              `json:"root" bson:"root"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	Graph          gio.Graph           `json:"graph" bson:"graph"`
	ComponentScans map[string][]string `json:"component_scans,omitempty" bson:"component_scans,omitempty"`
	Skipped        []analysis.Skip     `json:"skipped,omitempty" bson:"skipped,omitempty"`
}

// NewDocument builds the publication document for a finished run.
func NewDocument(res *analysis.Result) *Document {
	return &Document{
		ID:             res.RunID,
		Root:           res.Root,
		CreatedAt:      time.Now().UTC(),
		Graph:          gio.FromDAG(res.Graph),
		ComponentScans: res.ComponentScans,
		Skipped:        res.Skipped,
	}
}

// Sink is a publication backend.
type Sink interface {
	// Name identifies the backend in logs and hooks ("file", "redis", "mongodb").
	Name() string
	// Publish writes doc. It is safe to call more than once.
	Publish(ctx context.Context, doc *Document) error
	// Close releases backend connections.
	Close(ctx context.Context) error
}

// Open connects to the backend named by target.
func Open(ctx context.Context, target string) (Sink, error) {
	if strings.TrimSpace(target) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "publish target is empty")
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain paths, including Windows drive letters.
		return NewFileSink(target), nil
	}

	switch u.Scheme {
	case "file":
		return NewFileSink(u.Path), nil
	case "redis", "rediss":
		return OpenRedis(ctx, u)
	case "mongodb", "mongodb+srv":
		return OpenMongo(ctx, u)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported publish target scheme %q", u.Scheme)
	}
}

// Publish writes doc to s and reports the outcome to the sink hooks.
// Backend errors are wrapped with code SINK_FAILED.
func Publish(ctx context.Context, s Sink, doc *Document) error {
	start := time.Now()
	size := encodedSize(doc)
	err := s.Publish(ctx, doc)
	observability.Sink().OnPublish(ctx, s.Name(), size, time.Since(start), err)
	if err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeSinkFailed, err, "publish to %s", s.Name())
	}
	return nil
}

func encodedSize(doc *Document) int {
	data, err := json.Marshal(doc)
	if err != nil {
		return 0
	}
	return len(data)
}
