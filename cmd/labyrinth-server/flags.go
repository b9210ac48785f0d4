package main

import "flag"

// Command-line flags for the route server.
var (
	// addrFlag is the listen address.
	addrFlag = flag.String("addr", ":8080", "address to listen on")

	// wallsFlag names the wall file loaded at startup, if it exists, and
	// written by POST /walls/save.
	wallsFlag = flag.String("walls", "saved-walls.txt", "wall file (text, or GeoJSON by .geojson/.json extension)")

	strategyFlag = flag.String("strategy", "fifo", "search queue order: fifo or best-first")
)
