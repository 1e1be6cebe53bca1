package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	SceneRequest
	Drunk bool `json:"drunk"` // Wide sub-pixel jitter
}

// handleRender renders a scene and responds with a PNG. Render statistics
// are returned in X-Render-* headers.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := scene.CreateFromDir(req.Scene, s.scenesDir, req.Width, req.Height)
	if err != nil {
		writeSceneError(w, err)
		return
	}

	mode := renderer.JitterNormal
	if req.Drunk {
		mode = renderer.JitterHigh
	}

	logger := NewWebLogger(newRenderID())
	raytracer := renderer.NewRaytracer(sceneObj, logger)

	// Use request context to stop rendering when the client disconnects
	img := renderer.NewImage(req.Width, req.Height)
	stats, err := raytracer.Render(r.Context(), img, req.Camera, mode)
	switch {
	case errors.Is(err, renderer.ErrNoSuchCamera):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Printf("Render error: %v\n", err)
		writeError(w, http.StatusServiceUnavailable, "Render error: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, img, loaders.FormatPNG); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Rays", strconv.Itoa(stats.TotalRays()))
	w.Header().Set("X-Render-Max-Depth", strconv.Itoa(stats.MaxDepthReached))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()

	common, err := parseSceneParams(values)
	if err != nil {
		return nil, err
	}

	req := &RenderRequest{SceneRequest: *common}
	if req.Drunk, err = parseBoolParam(values, "drunk", false); err != nil {
		return nil, err
	}
	return req, nil
}

// writeSceneError maps scene lookup failures to HTTP status codes
func writeSceneError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, scene.ErrInvalidScene):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
