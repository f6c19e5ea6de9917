package dsp

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/handegar/wcsemu/base"
)

// Produces one buffer from a freshly created engine
type RenderFunc func(e *Engine) ([][2]float64, error)

// Renders every program concurrently, one engine per program. The
// context stops renders that have not started yet; a render in
// progress runs to completion. The first error cancels the rest.
func RenderAll(ctx context.Context, sampleRate float64, render RenderFunc,
	opts ...Option) ([base.NumPrograms][][2]float64, error) {

	var results [base.NumPrograms][][2]float64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for p := 0; p < base.NumPrograms; p++ {
		program := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := NewEngine(program, sampleRate, opts...)
			if err != nil {
				return err
			}
			out, err := render(e)
			if err != nil {
				return err
			}
			results[program] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
