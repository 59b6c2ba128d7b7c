package diffindex

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/diffindex/grid"
	"github.com/hupe1980/diffindex/library"
	"github.com/hupe1980/diffindex/match"
	"github.com/hupe1980/diffindex/pattern"
)

// Indexer drives one matcher over every position of a navigation grid.
// D is the per-position measured data type, R the per-position result.
//
// Positions are independent: no position's result depends on another's,
// and the library is shared read-only, so the grid fans out across workers
// without synchronization. Results are written by coordinate, making the
// output identical for any worker count.
type Indexer[D, R any] struct {
	matcher match.Matcher[D, R]
	opts    options
}

// New creates an indexer for the given matcher.
func New[D, R any](matcher match.Matcher[D, R], optFns ...Option) (*Indexer[D, R], error) {
	if matcher == nil {
		return nil, ErrNilMatcher
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Indexer[D, R]{
		matcher: matcher,
		opts:    opts,
	}, nil
}

// Run matches every position of the signal and returns the assembled
// results, carrying the signal's navigation axis calibration unchanged.
//
// Positions disabled by the mask receive the matcher's placeholder without
// invoking it. A nil mask matches everywhere.
//
// Cancellation is all-or-nothing: if the context is canceled or any
// position fails, the whole run returns an error and no partial results.
func (ix *Indexer[D, R]) Run(ctx context.Context, sig *grid.Signal[D], mask *grid.Mask) (*grid.Results[R], error) {
	start := time.Now()

	results, skipped, err := ix.run(ctx, sig, mask)

	shape := grid.Shape{}
	if sig != nil {
		shape = sig.Shape()
	}
	ix.opts.metricsCollector.RecordRun(shape.Size(), skipped, time.Since(start), err)
	ix.opts.logger.LogRun(ctx, shape, skipped, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (ix *Indexer[D, R]) run(ctx context.Context, sig *grid.Signal[D], mask *grid.Mask) (*grid.Results[R], int, error) {
	if sig == nil {
		return nil, 0, ErrNilSignal
	}

	shape := sig.Shape()
	if mask != nil && mask.Shape() != shape {
		return nil, 0, &ErrMaskShape{Mask: mask.Shape(), Navigation: shape}
	}

	results, err := grid.NewResults[R](shape, sig.Calibration())
	if err != nil {
		return nil, 0, err
	}

	// Placeholders are written inline; the matcher is never invoked for
	// masked-out positions.
	var skipped int
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.opts.numWorkers)

	for i := 0; i < shape.Size(); i++ {
		if mask != nil && !mask.EnabledIndex(i) {
			results.SetIndex(i, ix.matcher.Placeholder())
			skipped++
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if ix.opts.controller != nil {
				if err := ix.opts.controller.AcquireWorker(gctx); err != nil {
					return err
				}
				defer ix.opts.controller.ReleaseWorker()
			}

			posStart := time.Now()
			rec, err := ix.matcher.Match(gctx, sig.AtIndex(i))
			if err != nil {
				return err
			}
			results.SetIndex(i, rec)
			ix.opts.metricsCollector.RecordPosition(time.Since(posStart))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, skipped, err
	}
	return results, skipped, nil
}

// Correlate matches every diffraction pattern of the signal against a
// template library and returns the nLargest best hypotheses per position,
// ranked by correlation score.
//
// keys maps phase indices to labels in the output records; pass nil for
// contiguous integer labels.
func Correlate(
	ctx context.Context,
	sig *grid.Signal[*pattern.Pattern],
	lib *library.TemplateLibrary,
	nLargest int,
	keys []string,
	mask *grid.Mask,
	optFns ...Option,
) (*grid.Results[[]match.Record], error) {
	m, err := match.NewTemplateMatcher(lib, nLargest, keys)
	if err != nil {
		return nil, err
	}
	ix, err := New(m, optFns...)
	if err != nil {
		return nil, err
	}
	return ix.Run(ctx, sig, mask)
}

// IndexMagnitudes assigns Miller indices to the measured peak magnitudes at
// every position, within a relative tolerance in percent.
func IndexMagnitudes(
	ctx context.Context,
	sig *grid.Signal[[]float64],
	sim *library.ProfileSimulation,
	tolerance float64,
	mask *grid.Mask,
	optFns ...Option,
) (*grid.Results[[]match.PeakMatch], error) {
	m, err := match.NewProfileMatcher(sim, tolerance)
	if err != nil {
		return nil, err
	}
	ix, err := New(m, optFns...)
	if err != nil {
		return nil, err
	}
	return ix.Run(ctx, sig, mask)
}

// IndexVectors finds the best-explaining phase/orientation hypotheses for
// the measured diffraction vectors at every position. magThreshold is the
// maximum absolute magnitude error (reciprocal Angstroms), angleThreshold
// the maximum inter-vector angle error in degrees.
func IndexVectors(
	ctx context.Context,
	sig *grid.Signal[[]match.Vector],
	lib *library.VectorLibrary,
	magThreshold, angleThreshold float64,
	keys []string,
	mask *grid.Mask,
	optFns ...Option,
) (*grid.Results[[]match.Record], error) {
	m, err := match.NewVectorMatcher(lib, magThreshold, angleThreshold, keys)
	if err != nil {
		return nil, err
	}
	ix, err := New(m, optFns...)
	if err != nil {
		return nil, err
	}
	return ix.Run(ctx, sig, mask)
}
