package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned when a scene name matches neither a built-in nor a file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by CreateFromDir
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the JSON file (json type only)
}

type builtinScene struct {
	info    SceneInfo
	factory func(width, height int, cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{SceneInfo{ID: "default", DisplayName: "Default", Description: "Two spheres, a triangle and a floor lit by two point lights", Type: "builtin"}, NewDefaultScene},
	{SceneInfo{ID: "empty", DisplayName: "Empty", Description: "Nothing but sky", Type: "builtin"}, NewEmptyScene},
	{SceneInfo{ID: "sphere", DisplayName: "Single Sphere", Description: "One unlit sphere on the camera axis", Type: "builtin"}, NewSphereScene},
	{SceneInfo{ID: "mirrors", DisplayName: "Mirrors", Description: "Two facing mirrors with a sphere between them", Type: "builtin"}, NewMirrorScene},
	{SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Colored walls with a mirror sphere and a matte sphere", Type: "builtin"}, NewCornellScene},
	{SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "Grid of colored spheres on a floor", Type: "builtin"}, NewSphereGridScene},
}

// BuiltinScenes lists the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		scenes[i] = b.info
	}
	return scenes
}

// JSONScenePrefix marks scene IDs that name a .json file in a scenes directory
const JSONScenePrefix = "json:"

// Create resolves a scene name to a scene. Names are either built-in IDs or
// paths to .json scene files.
func Create(name string, width, height int) (*Scene, error) {
	if s, ok, err := createBuiltin(name, width, height); ok {
		return s, err
	}

	if strings.HasSuffix(name, ".json") {
		if _, err := os.Stat(name); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
		}
		return LoadJSON(name, width, height)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// CreateFromDir resolves a scene ID as listed by ListScenes. "json:<name>"
// loads <name>.json from dir; nothing outside dir is reachable.
func CreateFromDir(id, dir string, width, height int) (*Scene, error) {
	if s, ok, err := createBuiltin(id, width, height); ok {
		return s, err
	}

	name, found := strings.CutPrefix(id, JSONScenePrefix)
	if !found || !isLocalSceneName(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	path := filepath.Join(dir, name+".json")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return LoadJSON(path, width, height)
}

// isLocalSceneName accepts plain file names only: no separators, no "..", not absolute
func isLocalSceneName(name string) bool {
	if name == "" || !filepath.IsLocal(name) {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

func createBuiltin(name string, width, height int) (*Scene, bool, error) {
	for _, b := range builtinScenes {
		if b.info.ID == name {
			s := b.factory(width, height)
			if err := s.Validate(); err != nil {
				return nil, true, err
			}
			return s, true, nil
		}
	}
	return nil, false, nil
}

// ListScenes returns the built-in scenes followed by the JSON scenes found in dir.
// A missing directory is not an error.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := BuiltinScenes()

	if _, err := os.Stat(dir); err != nil {
		return scenes, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var found []SceneInfo
	for _, filePath := range files {
		name := strings.TrimSuffix(filepath.Base(filePath), ".json")
		found = append(found, SceneInfo{
			ID:          JSONScenePrefix + name,
			DisplayName: name,
			Type:        "json",
			FilePath:    filePath,
		})
	}

	// Sort scenes by display name
	sort.Slice(found, func(i, j int) bool {
		return found[i].DisplayName < found[j].DisplayName
	})

	return append(scenes, found...), nil
}
