// Package jigsaw turns a decoded raster image into an interactive jigsaw
// puzzle — grid factorization, seeded tab/blank edge synthesis, complementary
// piece contours, per-tile rasterization and a synchronous placement session.
//
// 🧩 What is jigsaw?
//
//	A pure-Go core library that brings together:
//		• Grid solving: rows×cols factorization best matching the image aspect
//		• Edge specs: one seeded tab/blank record per interior boundary,
//		  shared by both neighbors so abutting contours are complementary
//		• Contours: four-sided closed cubic-bezier paths per piece
//		• Rasterization: cropped, clipped and outlined image assets per piece
//		• Catalog: incremental, cancellable, all-or-nothing generation
//		• Session: tray, placements, selection, hints, filters, win detection
//
// ✨ Why choose jigsaw?
//
//   - Deterministic – every stochastic choice is drawn from an explicit seed,
//     so "restart same puzzle" and "recolor outline" reproduce identical shapes
//   - Rock-solid guarantees – atomic session transitions, no partial catalogs
//   - No I/O – callers hand in a decoded image.Image and render the assets;
//     fetching, decoding, layout and persistence stay outside the core
//
// Everything is organized under six subpackages, generation order first:
//
//	grid/     — piece-count factorization & cell index helpers
//	edgespec/ — seeded tab/blank parameters per interior boundary
//	contour/  — closed piece outlines built from resolved edge specs
//	raster/   — board layout and per-piece image assets
//	catalog/  — the piece model and the generation pipeline
//	session/  — the placement state machine on top of the catalog
//
// Quick ASCII example (2×3 grid, piece ids are also the correct cells):
//
//	┌───┬───┬───┐
//	│ 0 │ 1 │ 2 │
//	├───┼───┼───┤
//	│ 3 │ 4 │ 5 │
//	└───┴───┴───┘
//
// Dive into the per-package doc.go files for contracts, complexity notes and
// sentinel errors.
//
//	go get github.com/pieceworks/jigsaw
package jigsaw
