package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/logging"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Image size and depth limits accepted by the API
const (
	minSize  = 10
	maxSize  = 2000
	maxDepth = 10
)

// Server renders scenes over HTTP
type Server struct {
	port      int
	scenesDir string
	mux       *http.ServeMux
}

// NewServer creates a new web server. Scene files are looked up in
// scenesDir.
func NewServer(port int, scenesDir string) *Server {
	s := &Server{port: port, scenesDir: scenesDir, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	return s
}

// Handler exposes the routes, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logging.Info("Starting web server", "addr", "http://localhost"+srv.Addr, "scenes", s.scenesDir)
	return srv.ListenAndServe()
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string        `json:"scene"`  // builtin name or scene file name
	Width  int           `json:"width"`  // image width
	Height int           `json:"height"` // image height
	Depth  int           `json:"depth"`  // recursion depth, -1 keeps the scene's
	Mode   renderer.Mode `json:"mode"`
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists builtin scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	infos, err := loaders.Discover(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, infos)
}

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		s.writeSceneError(w, req.Scene, err)
		return
	}

	rend := renderer.NewRenderer(renderer.Config{Mode: req.Mode}, logging.Logger())
	img, stats := rend.Render(sceneObj.World, sceneObj.Camera)

	var buf bytes.Buffer
	if err := img.WritePNG(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode image: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", stats.RenderID)
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Warn("Failed to write render response", "render_id", stats.RenderID, "err", err)
	}
}

// parseRenderRequest parses and validates the query. A zero size keeps the
// scene camera's own size.
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if (req.Width == 0) != (req.Height == 0) {
		return nil, errors.New("width and height must be given together")
	}
	if req.Depth, err = parseIntParam(values, "depth", -1, 0, maxDepth); err != nil {
		return nil, err
	}

	req.Mode = renderer.Parallel
	if mode := values.Get("mode"); mode != "" {
		if req.Mode, err = renderer.ParseMode(mode); err != nil {
			return nil, err
		}
	}

	if req.Width*req.Height > 800*600 {
		logging.Warn("Large render requested", "width", req.Width, "height", req.Height)
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

// createScene resolves the scene and applies the request's size and depth.
// Only builtin names and files inside the scenes directory are accepted.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	name := req.Scene
	if strings.HasSuffix(strings.ToLower(name), ".toml") {
		name = filepath.Join(s.scenesDir, name)
		if err := loaders.ValidateScenePath(name, s.scenesDir); err != nil {
			return nil, err
		}
	} else if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, name)
	}

	sceneObj, err := loaders.Resolve(name, s.scenesDir)
	if err != nil {
		return nil, err
	}
	if req.Width > 0 {
		sceneObj.Resize(req.Width, req.Height)
	}
	if req.Depth >= 0 {
		sceneObj.World.RecursiveDepth = req.Depth
	}
	return sceneObj, nil
}

func (s *Server) writeSceneError(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, "Unknown scene: "+name)
		return
	}
	logging.Warn("Scene failed to load", "scene", name, "err", err)
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
