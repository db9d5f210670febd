package server

import (
	"context"
	"io"

	"github.com/iwvelando/finance-report/internal/loader"
	"github.com/iwvelando/finance-report/internal/summary"
)

// Pipeline turns an uploaded transaction file into a Summary. The handler
// depends on this interface, not on the loader directly.
//
//go:generate mockgen -destination=mocks/mock_pipeline.go -package=mocks -source=pipeline.go Pipeline
type Pipeline interface {
	Summarize(ctx context.Context, r io.Reader, name string, format loader.Format) (summary.Summary, error)
}

type loaderPipeline struct {
	loader *loader.Loader
}

// NewPipeline returns the Pipeline backed by the transaction loader.
func NewPipeline(l *loader.Loader) Pipeline {
	if l == nil {
		l = loader.New(nil, loader.Options{})
	}
	return &loaderPipeline{loader: l}
}

func (p *loaderPipeline) Summarize(ctx context.Context, r io.Reader, name string, format loader.Format) (summary.Summary, error) {
	txns, err := p.loader.LoadReader(ctx, r, name, format)
	if err != nil {
		return summary.Summary{}, err
	}
	return summary.Summarize(txns), nil
}
