package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/pkg/errors"

	"labyrinth"
)

func main() {
	flag.Parse()

	log.Println("========================================")
	log.Println("🚀 Labyrinth Route Server")
	log.Println("========================================")

	strategy, err := labyrinth.ParseStrategy(*strategyFlag)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Checking for wall file %s...\n", *wallsFlag)
	walls, err := labyrinth.LoadWallsAuto(*wallsFlag)
	switch {
	case err == nil:
		log.Printf("✅ Loaded %d walls from file\n", len(walls))
	case errors.Is(err, os.ErrNotExist):
		log.Println("ℹ️  No wall file found (this is normal on first run)")
		log.Println("   POST /walls to add walls")
	default:
		log.Fatalf("❌ %v", err)
	}
	log.Println("")

	srv := newServer(newWallStore(walls), strategy, *wallsFlag, log.Default())

	log.Printf("Server starting on %s (%s search)\n", *addrFlag, strategy)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST   /route         - Compute route with start and end points")
	log.Println("  GET    /walls         - List walls")
	log.Println("  POST   /walls         - Add one wall or a list of walls")
	log.Println("  DELETE /walls         - Remove all walls")
	log.Println("  POST   /walls/save    - Write walls to the wall file")
	log.Println("  GET    /walls.geojson - Walls as GeoJSON")
	log.Println("  GET    /graph         - Visibility graph edges for visualization")
	log.Println("  GET    /health        - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(*addrFlag, srv.routes(os.Stdout)); err != nil {
		log.Fatal(err)
	}
}
