package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"labyrinth"
)

type RouteRequest struct {
	Start labyrinth.Point     `json:"start"`
	End   labyrinth.Point     `json:"end"`
	Walls []labyrinth.Segment `json:"walls,omitempty"` // Optional: replaces the stored walls for this request
}

type RouteResponse struct {
	Path     []labyrinth.Point   `json:"path"`
	Segments []labyrinth.Segment `json:"segments"`
	Success  bool                `json:"success"`
	Message  string              `json:"message,omitempty"`
	Length   float64             `json:"length"`
	Stats    labyrinth.Stats     `json:"stats"`
}

type WallsResponse struct {
	Walls []labyrinth.Segment `json:"walls"`
	Count int                 `json:"count"`
}

type GraphResponse struct {
	Lines    []labyrinth.Segment `json:"lines"`
	NumNodes int                 `json:"numNodes"`
	NumEdges int                 `json:"numEdges"`
}

type server struct {
	store     *wallStore
	strategy  labyrinth.Strategy
	wallsFile string
	logger    *log.Logger
}

func newServer(store *wallStore, strategy labyrinth.Strategy, wallsFile string, logger *log.Logger) *server {
	return &server{
		store:     store,
		strategy:  strategy,
		wallsFile: wallsFile,
		logger:    logger,
	}
}

// routes wires every endpoint behind access logging to accessLog and CORS
// for all origins.
func (s *server) routes(accessLog io.Writer) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/route", s.routeHandler).Methods("POST")
	router.HandleFunc("/walls", s.listWallsHandler).Methods("GET")
	router.HandleFunc("/walls", s.addWallsHandler).Methods("POST")
	router.HandleFunc("/walls", s.clearWallsHandler).Methods("DELETE")
	router.HandleFunc("/walls/save", s.saveWallsHandler).Methods("POST")
	router.HandleFunc("/walls.geojson", s.wallsGeoJSONHandler).Methods("GET")
	router.HandleFunc("/graph", s.graphHandler).Methods("GET").
		Queries("x1", "{x1}", "y1", "{y1}", "x2", "{x2}", "y2", "{y2}")
	router.HandleFunc("/health", s.healthHandler).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return handlers.CombinedLoggingHandler(accessLog, cors(router))
}

func (s *server) planner(walls []labyrinth.Segment) *labyrinth.Planner {
	return labyrinth.NewPlanner(walls,
		labyrinth.WithStrategy(s.strategy),
		labyrinth.WithLogger(s.logger),
	)
}

// POST /route - Compute a route around the stored walls, or the request's own
func (s *server) routeHandler(w http.ResponseWriter, r *http.Request) {
	s.logger.Println("========================================")
	s.logger.Println("📍 Route request received")
	defer s.logger.Println("========================================")

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.logger.Printf("   Start: %v\n", req.Start)
	s.logger.Printf("   End:   %v\n", req.End)

	walls := req.Walls
	if walls == nil {
		walls = s.store.Snapshot()
	} else {
		s.logger.Printf("   Using %d walls from the request\n", len(walls))
	}

	result, err := s.planner(walls).Search(r.Context(), req.Start, req.End)
	if err != nil {
		s.logger.Printf("⚠️  %v\n", err)
		http.Error(w, "Search cancelled", http.StatusServiceUnavailable)
		return
	}

	response := RouteResponse{
		Path:     result.Waypoints(req.Start),
		Segments: result.Segments,
		Success:  result.Found,
		Length:   result.Length,
		Stats:    result.Stats,
	}

	if !result.Found {
		response.Message = "No path found"
	} else {
		s.logger.Printf("   Path preview (%d waypoints):\n", len(response.Path))
		for i := 0; i < len(response.Path) && i < 3; i++ {
			s.logger.Printf("      %d: %v\n", i, response.Path[i])
		}
		if len(response.Path) > 3 {
			s.logger.Printf("      ... %d: %v\n", len(response.Path)-1, response.Path[len(response.Path)-1])
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /walls
func (s *server) listWallsHandler(w http.ResponseWriter, r *http.Request) {
	walls := s.store.Snapshot()
	writeJSON(w, http.StatusOK, WallsResponse{Walls: walls, Count: len(walls)})
}

// POST /walls - Append one wall ({"p1":..,"p2":..}) or a list of them
func (s *server) addWallsHandler(w http.ResponseWriter, r *http.Request) {
	walls, err := decodeWalls(r.Body)
	if err != nil {
		s.logger.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	count := s.store.Add(walls...)
	s.logger.Printf("🧱 Added %d walls (%d total)\n", len(walls), count)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"added":   len(walls),
		"count":   count,
	})
}

func decodeWalls(body io.Reader) ([]labyrinth.Segment, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var walls []labyrinth.Segment
		if err := json.Unmarshal(trimmed, &walls); err != nil {
			return nil, err
		}
		return walls, nil
	}

	var wall labyrinth.Segment
	if err := json.Unmarshal(raw, &wall); err != nil {
		return nil, err
	}
	return []labyrinth.Segment{wall}, nil
}

// DELETE /walls
func (s *server) clearWallsHandler(w http.ResponseWriter, r *http.Request) {
	s.store.Clear()
	s.logger.Println("🗑️  Walls cleared")
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "count": 0})
}

// POST /walls/save - Write the stored walls to the wall file
func (s *server) saveWallsHandler(w http.ResponseWriter, r *http.Request) {
	walls := s.store.Snapshot()
	if err := labyrinth.SaveWallsAuto(s.wallsFile, walls); err != nil {
		s.logger.Printf("⚠️  Failed to save walls: %v\n", err)
		http.Error(w, "Could not save walls", http.StatusInternalServerError)
		return
	}

	s.logger.Printf("💾 Saved %d walls to %s\n", len(walls), s.wallsFile)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(walls),
		"file":    s.wallsFile,
	})
}

// GET /walls.geojson
func (s *server) wallsGeoJSONHandler(w http.ResponseWriter, r *http.Request) {
	fc := labyrinth.RouteGeoJSON(s.store.Snapshot(), labyrinth.Point{}, nil)
	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		s.logger.Printf("⚠️  Failed to write GeoJSON: %v\n", err)
	}
}

// GET /graph?x1=&y1=&x2=&y2= - Visibility graph edges for visualization
func (s *server) graphHandler(w http.ResponseWriter, r *http.Request) {
	s.logger.Println("📊 Visibility graph request received")

	vars := mux.Vars(r)
	coords := make([]float64, 0, 4)
	for _, name := range []string{"x1", "y1", "x2", "y2"} {
		v, err := strconv.ParseFloat(vars[name], 64)
		if err != nil {
			http.Error(w, "Invalid coordinate "+name, http.StatusBadRequest)
			return
		}
		coords = append(coords, v)
	}
	start := labyrinth.Point{X: coords[0], Y: coords[1]}
	end := labyrinth.Point{X: coords[2], Y: coords[3]}

	graph, err := s.planner(s.store.Snapshot()).VisibilityGraph(start, end)
	if err != nil {
		s.logger.Printf("❌ %v\n", err)
		status := http.StatusInternalServerError
		if errors.Is(err, labyrinth.ErrGraphTooLarge) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	lines := graph.Lines()
	s.logger.Printf("   Returning %d line segments\n", len(lines))

	writeJSON(w, http.StatusOK, GraphResponse{
		Lines:    lines,
		NumNodes: len(graph.Nodes),
		NumEdges: len(lines),
	})
}

// GET /health - Health check endpoint
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"walls":    s.store.Len(),
		"strategy": s.strategy.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
