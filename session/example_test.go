package session_test

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/pieceworks/jigsaw/catalog"
	"github.com/pieceworks/jigsaw/session"
)

// ExampleEngine walks a 2×2 puzzle from a shuffled tray to the win state:
// select each piece, drop it on its own cell, and watch the counters move.
func ExampleEngine() {
	// A tiny source image is enough to cut a 2×2 puzzle from.
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(6 * x), G: uint8(6 * y), A: 0xff})
		}
	}

	cat, err := catalog.Generate(context.Background(), img, 4, catalog.WithSeed(1))
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	eng, err := session.New(cat, session.WithSeed(1))
	if err != nil {
		fmt.Println("session:", err)
		return
	}

	// Dropping a piece anywhere but its own cell is rejected.
	eng.Select(0)
	fmt.Println("wrong cell:", eng.AttemptPlace(3) == session.PlaceRejected)

	// Placing every piece on its own cell solves the puzzle.
	for id := 0; id < cat.Len(); id++ {
		eng.Select(id)
		eng.AttemptPlace(id)
	}
	fmt.Println("placed:", eng.PlacedCount())
	fmt.Println("solved:", eng.Solved())
	// Output:
	// wrong cell: true
	// placed: 4
	// solved: true
}
