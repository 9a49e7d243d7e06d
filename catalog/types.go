// Package catalog - piece model, generation options and sentinel errors.
package catalog

import (
	"errors"

	"github.com/pieceworks/jigsaw/raster"
)

// Sentinel errors for catalog generation.
var (
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("catalog: source image is nil")
	// ErrGenerationFailed indicates a tile failed to rasterize; the whole
	// batch is aborted and the cause is wrapped.
	ErrGenerationFailed = errors.New("catalog: generation failed")
	// ErrGenerationAborted indicates the context was cancelled mid-batch.
	ErrGenerationAborted = errors.New("catalog: generation aborted")
	// ErrImageMismatch indicates Restyle received an image whose dimensions
	// differ from the one the catalog was generated from.
	ErrImageMismatch = errors.New("catalog: image dimensions differ from the generated layout")
)

// Generation cadence. Yielding returns control to a cooperative event loop;
// progress reporting is coarser to avoid excessive re-renders.
const (
	yieldEvery    = 24
	progressEvery = 12
)

// Progress reports how many pieces of the batch have been rendered.
type Progress struct {
	Done  int
	Total int
}

// Options configures catalog generation.
//
// Seed     – puzzle seed; 0 selects the fixed default seed. Identical seeds
//
//	reproduce identical geometry (restart / cosmetic regeneration).
//
// Style    – outline cosmetics passed to the rasterizer.
// Progress – invoked every 12 pieces and on completion; may be nil.
// Yield    – invoked every 24 pieces to cede control; may be nil.
type Options struct {
	Seed     int64
	Style    raster.Style
	Progress func(Progress)
	Yield    func()
}

// Option is a functional option for configuring generation.
type Option func(*Options)

// DefaultOptions returns generation defaults: default outline style, seed 0
// (i.e. the fixed default seed), no callbacks.
func DefaultOptions() Options {
	return Options{Style: raster.DefaultStyle()}
}

// WithSeed sets the puzzle seed. Pass a fresh value for a new puzzle and the
// stored one to reproduce a previous puzzle's geometry exactly.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithStyle sets the outline style used for all pieces.
func WithStyle(s raster.Style) Option {
	return func(o *Options) { o.Style = s }
}

// WithProgress installs the coarse progress callback.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithYield installs the cooperative yield callback.
func WithYield(fn func()) Option {
	return func(o *Options) { o.Yield = fn }
}
