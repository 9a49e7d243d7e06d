package grid

import "math"

// Solve picks the rows×cols factorization of count that best matches the
// image aspect ratio (width/height).
//
// Every divisor pair (rows=d, cols=count/d) is scored by the log-ratio
// distance |ln((cols/rows)/aspect)|; the minimal score wins, ties keep the
// first pair in ascending divisor order. After the scan, the swapped
// orientation (portrait ↔ landscape) replaces the winner only if it scores
// strictly better.
//
// Guarantees: Rows*Cols == count for all valid inputs; prime counts yield a
// 1×N strip.
//
// Complexity: O(count) time, O(1) space.
func Solve(count int, aspect float64) (Grid, error) {
	if count < 1 {
		return Grid{}, ErrBadCount
	}
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return Grid{}, ErrBadAspect
	}

	bestRows, bestCols := 1, count
	bestScore := math.Inf(1)
	for d := 1; d <= count; d++ {
		if count%d != 0 {
			continue
		}
		rows, cols := d, count/d
		score := layoutScore(rows, cols, aspect)
		if score < bestScore {
			bestRows, bestCols = rows, cols
			bestScore = score
		}
	}

	// Swap orientation only when it is a strict improvement.
	if layoutScore(bestCols, bestRows, aspect) < bestScore {
		bestRows, bestCols = bestCols, bestRows
	}

	return Grid{Rows: bestRows, Cols: bestCols, Count: count}, nil
}

// layoutScore is the scale-symmetric mismatch between a rows×cols layout and
// the target aspect ratio.
func layoutScore(rows, cols int, aspect float64) float64 {
	return math.Abs(math.Log((float64(cols) / float64(rows)) / aspect))
}

// Divisors returns all divisors of n in ascending order, or nil for n < 1.
// Exposed for callers probing candidate piece counts.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}
	var ds []int
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			ds = append(ds, d)
		}
	}

	return ds
}

// TileSize returns the source-image pixel size of one tile for the given
// image dimensions.
func (g Grid) TileSize(imgW, imgH int) (tileW, tileH float64, err error) {
	if imgW < 1 || imgH < 1 {
		return 0, 0, ErrBadImageSize
	}

	return float64(imgW) / float64(g.Cols), float64(imgH) / float64(g.Rows), nil
}

// MinTileDim returns the shorter tile dimension in source pixels. Callers
// threshold this value (a common policy is ≥ 28 output pixels) to warn about
// piece counts that would produce unrecognizably small pieces.
func (g Grid) MinTileDim(imgW, imgH int) (float64, error) {
	w, h, err := g.TileSize(imgW, imgH)
	if err != nil {
		return 0, err
	}

	return math.Min(w, h), nil
}
