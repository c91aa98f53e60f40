package loaders

// SceneFile is the TOML document describing a scene. Colours are either
// hex strings ("#ff8800", "#f80") or [r, g, b] arrays in [0, 1]. Angles
// are in degrees.
type SceneFile struct {
	Title       string      `toml:"title"`
	Description string      `toml:"description"`
	Depth       int         `toml:"depth"`
	Fresnel     bool        `toml:"fresnel"`
	Camera      CameraSpec  `toml:"camera"`
	Lights      []LightSpec `toml:"lights"`
	Shapes      []ShapeSpec `toml:"shapes"`
}

// CameraSpec places the camera
type CameraSpec struct {
	Width  int       `toml:"width"`
	Height int       `toml:"height"`
	FOV    float64   `toml:"fov"`
	From   []float64 `toml:"from"`
	To     []float64 `toml:"to"`
	Up     []float64 `toml:"up"`
}

// LightSpec describes a point light
type LightSpec struct {
	Position  []float64 `toml:"position"`
	Intensity any       `toml:"intensity"`
}

// ShapeSpec describes one primitive
type ShapeSpec struct {
	Type      string          `toml:"type"`
	Vertices  [][]float64     `toml:"vertices"` // triangle only
	Transform []TransformSpec `toml:"transform"`
	Material  *MaterialSpec   `toml:"material"`
}

// TransformSpec is one elementary transform. Lists are applied in order.
type TransformSpec struct {
	Op     string    `toml:"op"` // translate, scale, rotate, shear
	Values []float64 `toml:"values"`
	Axis   string    `toml:"axis"`
	Angle  float64   `toml:"angle"`
}

// MaterialSpec overrides material defaults. Unset fields keep the default.
type MaterialSpec struct {
	Color           any          `toml:"color"`
	Pattern         *PatternSpec `toml:"pattern"`
	Ambient         *float64     `toml:"ambient"`
	Diffuse         *float64     `toml:"diffuse"`
	Specular        *float64     `toml:"specular"`
	Shininess       *float64     `toml:"shininess"`
	Reflective      *float64     `toml:"reflective"`
	Transparency    *float64     `toml:"transparency"`
	RefractiveIndex any          `toml:"refractive_index"` // number or medium name
}

// PatternSpec describes a surface pattern
type PatternSpec struct {
	Type      string          `toml:"type"`
	Colors    []any           `toml:"colors"`
	Transform []TransformSpec `toml:"transform"`
}
