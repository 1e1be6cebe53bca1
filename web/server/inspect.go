package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	ShapeIndex   int                    `json:"shapeIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"`
	Properties   map[string]interface{} `json:"properties"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo returns the Phong coefficients of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"ambient":   vecArray(mat.Ambient),
		"kDiffuse":  mat.KDiffuse,
		"kSpecular": mat.KSpecular,
		"shininess": mat.Shininess,
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties
	case *geometry.Triangle:
		properties["p1"] = vecArray(geom.P1)
		properties["p2"] = vecArray(geom.P2)
		properties["p3"] = vecArray(geom.P3)
		properties["area"] = geom.Area()
		return "triangle", properties
	case *geometry.Quad:
		properties["p1"] = vecArray(geom.P1)
		properties["p2"] = vecArray(geom.P2)
		properties["p3"] = vecArray(geom.P3)
		properties["p4"] = vecArray(geom.P4)
		properties["area"] = geom.Area()
		return "quad", properties
	default:
		return "unknown", properties
	}
}

// handleInspect traces the ray through one pixel and reports what it hit
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	req, err := parseSceneParams(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := scene.CreateFromDir(req.Scene, s.scenesDir, req.Width, req.Height)
	if err != nil {
		writeSceneError(w, err)
		return
	}

	result, err := renderer.NewRaytracer(sceneObj, nil).InspectPixel(req.Camera, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := InspectResponse{
		Hit:        result.Hit,
		ShapeIndex: result.ShapeIndex,
		Color:      vecArray(result.Color),
	}
	if result.Hit {
		geometryType, geometryProps := extractGeometryInfo(result.Shape)
		response.GeometryType = geometryType
		response.Point = vecArray(result.Point)
		response.Normal = vecArray(result.Normal)
		response.Distance = result.Distance
		response.Properties = map[string]interface{}{
			"geometry": geometryProps,
			"material": extractMaterialInfo(result.Shape.GetMaterial()),
		}
	}

	writeJSON(w, http.StatusOK, response)
}
