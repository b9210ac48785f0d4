package main

import "flag"

const (
	defaultWidth  = 400
	defaultHeight = 400
)

// Command-line flags for the viewer. The walls file is the first positional
// argument.
var (
	widthFlag  = flag.Int("width", defaultWidth, "window width in pixels")
	heightFlag = flag.Int("height", defaultHeight, "window height in pixels")

	// strategyFlag picks the search queue order used for every route.
	strategyFlag = flag.String("strategy", "fifo", "search queue order: fifo or best-first")
)
