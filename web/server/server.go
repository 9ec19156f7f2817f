package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/loaders"
	"github.com/df07/go-phong-views/pkg/renderer"
	"github.com/df07/go-phong-views/pkg/scene"
)

const (
	consoleBufferSize = 256
	maxConfigBytes    = 1 << 20
)

// Server handles web requests for the view renderer
type Server struct {
	port      int
	scenesDir string // Directory scanned for JSON scene configs
}

// NewServer creates a new web server
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string          // Preset name or config scene ID
	Axes     []geometry.Axis // Views to render, nil for all
	Base     int             // Pixel rows per view, 0 keeps the scene default
	Workers  int             // Tile workers per view, 0 = auto-detect
	Distance float64         // Observer distance along each view axis, 0 keeps the scene observer
	Config   []byte          // JSON scene config from a POST body
}

// RenderResponse is the JSON body returned by /api/render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	Views     []ViewResponse   `json:"views"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// ViewResponse carries one rendered view
type ViewResponse struct {
	Axis        string    `json:"axis"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	ImageData   string    `json:"imageData,omitempty"` // Base64 encoded PNG
	Profile     []float64 `json:"profile,omitempty"`   // Raw samples along the center row
	Stats       Stats     `json:"stats"`
	Error       string    `json:"error,omitempty"`
	Recoverable bool      `json:"recoverable"`
}

// Stats represents render statistics
type Stats struct {
	OccupiedPixels int             `json:"occupiedPixels"`
	MaxSample      float64         `json:"maxSample"`
	MinSample      float64         `json:"minSample"`
	MeanSample     float64         `json:"meanSample"`
	ElapsedMs      int64           `json:"elapsedMs"`
	ControlSamples []ControlSample `json:"controlSamples"`
}

// ControlSample is the raw radiance at a named surface point
type ControlSample struct {
	Surface int        `json:"surface"`
	Kind    string     `json:"kind"`
	Name    string     `json:"name"`
	Point   [3]float64 `json:"point"`
	Value   float64    `json:"value"`
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in presets and the config scenes on disk
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleRender renders every requested view and returns them in one response
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use GET or POST")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, views, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	views, err = geometry.SelectViews(views, req.Axes, req.Base)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Distance > 0 {
		for i := range views {
			observer := views[i].Axis.Direction().Multiply(req.Distance)
			views[i].Observer = &observer
		}
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, consoleBufferSize)
	config := renderer.DefaultRasterConfig()
	config.NumWorkers = req.Workers
	rasterizer := renderer.NewRasterizer(config, NewWebLogger(renderID, consoleChan))

	startTime := time.Now()
	results := rasterizer.RenderViews(sceneObj, views)

	response := RenderResponse{
		Scene:     req.Scene,
		Views:     make([]ViewResponse, 0, len(results)),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	}
	for _, vr := range results {
		view, err := s.viewResponse(vr)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
			return
		}
		response.Views = append(response.Views, view)
	}
	response.Console = drainConsole(consoleChan)

	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}

	if r.Method == http.MethodPost {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxConfigBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		if len(body) == 0 {
			return nil, fmt.Errorf("POST requires a JSON scene config body")
		}
		req.Config = body
		if req.Scene == "" {
			req.Scene = "custom"
		}
	} else if req.Scene == "" {
		req.Scene = "sphere" // Default scene
	}

	if views := query.Get("views"); views != "" {
		axes, err := geometry.ParseAxes(views)
		if err != nil {
			return nil, err
		}
		req.Axes = axes
	}

	var err error
	if req.Base, err = parseIntParam(query, "base", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 1, 256); err != nil {
		return nil, err
	}
	if req.Distance, err = parseFloatParam(query, "distance", 0, 1, 1e6); err != nil {
		return nil, err
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the scene from the POSTed config, a preset, or a config
// file discovered in the scenes directory
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, []geometry.ViewSpec, error) {
	if req.Config != nil {
		cfg, err := loaders.ParseSceneConfig(req.Config)
		if err != nil {
			return nil, nil, err
		}
		return cfg.Build()
	}

	if sceneObj, views, err := scene.Lookup(req.Scene); err == nil {
		return sceneObj, views, nil
	}

	configs, err := scene.ListConfigScenes(s.scenesDir)
	if err != nil {
		return nil, nil, err
	}
	for _, info := range configs {
		if info.ID != req.Scene {
			continue
		}
		cfg, err := loaders.LoadSceneConfig(info.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return cfg.Build()
	}
	return nil, nil, fmt.Errorf("unknown scene: %s", req.Scene)
}

// viewResponse converts a rendered view into its JSON form
func (s *Server) viewResponse(vr *renderer.ViewResult) (ViewResponse, error) {
	resp := ViewResponse{
		Axis:        vr.View.Axis.String(),
		Width:       vr.Stats.Columns,
		Height:      vr.Stats.Rows,
		Profile:     vr.ProfileAt(vr.View.CenterV),
		Recoverable: renderer.IsRecoverable(vr.Err),
		Stats: Stats{
			OccupiedPixels: vr.Stats.OccupiedPixels,
			MaxSample:      vr.Stats.MaxSample,
			MinSample:      vr.Stats.MinSample,
			MeanSample:     vr.Stats.MeanSample,
			ElapsedMs:      vr.Stats.Elapsed.Milliseconds(),
			ControlSamples: make([]ControlSample, 0, len(vr.Stats.ControlSamples)),
		},
	}
	if vr.Err != nil {
		resp.Error = vr.Err.Error()
	}
	for _, cs := range vr.Stats.ControlSamples {
		resp.Stats.ControlSamples = append(resp.Stats.ControlSamples, ControlSample{
			Surface: cs.Surface,
			Kind:    cs.Kind,
			Name:    cs.Name,
			Point:   [3]float64{cs.Point.X, cs.Point.Y, cs.Point.Z},
			Value:   cs.Value,
		})
	}
	if vr.Image != nil {
		data, err := s.imageToBase64PNG(vr.Image)
		if err != nil {
			return resp, err
		}
		resp.ImageData = data
	}
	return resp, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
