package source

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"execexam/internal/domain"
	"execexam/internal/nodeid"
)

// DefaultConcurrency bounds how many files are read at once.
const DefaultConcurrency = 4

// Retriever fetches the source of failing tests.
type Retriever struct {
	parser      *Parser
	concurrency int
	log         logrus.FieldLogger
}

// NewRetriever creates a new Retriever
func NewRetriever(parser *Parser, log logrus.FieldLogger) *Retriever {
	return &Retriever{
		parser:      parser,
		concurrency: DefaultConcurrency,
		log:         log.WithField("component", "source.retriever"),
	}
}

// Retrieve extracts the source for a single location. Parametrized test
// names are resolved to their function.
func (r *Retriever) Retrieve(loc domain.FailingTestLocation) domain.Snippet {
	function := nodeid.StripParams(loc.TestName)
	snippet := domain.Snippet{Location: loc}

	src, err := r.parser.Extract(loc.TestPath, function)
	if err != nil {
		var notFound *ErrFunctionNotFound
		if errors.As(err, &notFound) {
			if names, ferr := r.parser.FindTestFunctions(loc.TestPath); ferr == nil && len(names) > 0 {
				r.log.WithField("available", names).Debug("test function not found")
			}
		}
		r.log.WithError(err).WithField("test", loc.TestName).Warn("could not extract test source")
		snippet.Error = err.Error()
		return snippet
	}
	snippet.Source = src
	return snippet
}

// RetrieveAll extracts every location concurrently. Snippets are returned in
// the order of locs; extraction failures are recorded on the snippet and
// only cancellation of ctx is returned as an error.
func (r *Retriever) RetrieveAll(ctx context.Context, locs []domain.FailingTestLocation) ([]domain.Snippet, error) {
	snippets := make([]domain.Snippet, len(locs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, loc := range locs {
		i, loc := i, loc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			snippets[i] = r.Retrieve(loc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snippets, nil
}
