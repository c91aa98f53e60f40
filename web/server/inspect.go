package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/intersect"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	Color        [3]float64             `json:"color"` // shaded colour of the pixel
	Material     map[string]interface{} `json:"material,omitempty"`
	SceneBounds  *[2][3]float64         `json:"sceneBounds,omitempty"` // finite shapes only
}

// materialInfo flattens the Phong parameters of a material
func materialInfo(m material.Material) map[string]interface{} {
	return map[string]interface{}{
		"pattern":         m.Pattern.Kind.String(),
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
	}
}

// inspectPixel casts the camera ray through a pixel and describes the first
// surface it hits
func inspectPixel(sceneObj *scene.Scene, px, py int) InspectResponse {
	ray := sceneObj.Camera.RayForPixel(px, py)
	c := sceneObj.World.ColorAt(ray)
	resp := InspectResponse{Color: [3]float64{c.R, c.G, c.B}}
	if b := sceneObj.Bounds(); b.IsValid() {
		resp.SceneBounds = &[2][3]float64{{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Max.Z}}
	}

	xs := sceneObj.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return resp
	}

	d := intersect.Prepare(hit, ray, xs)
	resp.Hit = true
	resp.GeometryType = geometryType(d.Object)
	resp.Point = [3]float64{d.Point.X, d.Point.Y, d.Point.Z}
	resp.Normal = [3]float64{d.Normal.X, d.Normal.Y, d.Normal.Z}
	resp.Distance = d.T
	resp.Inside = d.Inside
	resp.Material = materialInfo(d.Object.Material)
	return resp
}

func geometryType(s *geometry.Shape) string {
	if s == nil {
		return "unknown"
	}
	return s.Kind.String()
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		s.writeSceneError(w, req.Scene, err)
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.Camera.HSize || pixelY < 0 || pixelY >= sceneObj.Camera.VSize {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}
