package velvet

import (
	"image"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/nfnt/resize"
)

// Scene owns a rasterization context, a camera and a list of objects,
// and renders them to PNG. Rendering happens at size*scale and is
// downsampled back to size for cheap antialiasing.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	eye, center, up mgl64.Vec3
	fovy, aspect    float64
	size, scale     int
}

// NewScene returns a scene rendering a square image of the given size.
// fovy is in degrees.
func NewScene(eye, center, up mgl64.Vec3, fovy float64, size, scale int, shader Shader) *Scene {
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{
		Context: context,
		Shader:  shader,
		eye:     eye,
		center:  center,
		up:      up,
		fovy:    fovy,
		aspect:  1,
		size:    size,
		scale:   scale,
	}
}

func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

func (s *Scene) AddObjects(objects ...*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// FitObjectsToScene computes a view-projection matrix whose field of
// view is widened just enough to contain every object's bounding box.
func (s *Scene) FitObjectsToScene(eye, center, up mgl64.Vec3, aspect, near, far float64) mgl64.Mat4 {
	viewMatrix := mgl64.LookAtV(eye, center, up)

	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.Mesh.BoundingBox())
		}
	}
	if len(boxes) == 0 {
		return mgl64.Perspective(mgl64.DegToRad(60), aspect, near, far).Mul4(viewMatrix)
	}
	sceneBox := BoxForBoxes(boxes)

	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := viewMatrix.Mul4x1(corner.Vec4(1)).Vec3()

		// The camera looks down negative Z in view space; absZ is the
		// depth of the corner from the camera plane.
		absZ := math.Abs(p.Z())
		if absZ < 1e-6 {
			continue
		}

		if angleX := math.Atan(math.Abs(p.X()) / absZ); angleX > maxAngleX {
			maxAngleX = angleX
		}
		if angleY := math.Atan(math.Abs(p.Y()) / absZ); angleY > maxAngleY {
			maxAngleY = angleY
		}
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/aspect)
	finalFovy := math.Max(fovyFromX, fovyFromY)

	// 5% padding so objects do not touch the frame.
	finalFovy *= 1.05
	if finalFovy <= 0 {
		finalFovy = mgl64.DegToRad(60)
	}

	return mgl64.Perspective(finalFovy, aspect, near, far).Mul4(viewMatrix)
}

// ViewProjection returns the camera matrix from the scene's own eye,
// center and field of view.
func (s *Scene) ViewProjection(near, far float64) mgl64.Mat4 {
	view := mgl64.LookAtV(s.eye, s.center, s.up)
	return mgl64.Perspective(mgl64.DegToRad(s.fovy), s.aspect, near, far).Mul4(view)
}

// Draw renders the scene to a PNG file. With fit set, the camera matrix
// is recomputed to frame all objects first.
func (s *Scene) Draw(fit bool, path string, objects ...*Object) error {
	s.AddObjects(objects...)

	viewMatrix := mgl64.LookAtV(s.eye, s.center, s.up)
	if ms, ok := s.Shader.(MatrixShader); ok {
		matrix := s.ViewProjection(1, 999)
		if fit {
			matrix = s.FitObjectsToScene(s.eye, s.center, s.up, s.aspect, 1, 999)
		}
		ms.SetViewProjection(matrix)
	}
	if st, ok := s.Shader.(*StylizedShader); ok {
		st.View = viewMatrix
		st.CameraPosition = s.eye
	}

	for _, o := range s.Objects {
		if o.Mesh == nil {
			log.Printf("velvet: object with nil mesh skipped")
			continue
		}
		s.Context.DrawObject(o)
	}

	im := s.Context.Image()
	if s.scale > 1 {
		im = resize.Resize(uint(s.size), uint(s.size), im, resize.Bilinear)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, im)
}

// Image renders the scene and returns the image without encoding it.
func (s *Scene) Image() image.Image {
	for _, o := range s.Objects {
		if o.Mesh == nil {
			continue
		}
		s.Context.DrawObject(o)
	}
	im := s.Context.Image()
	if s.scale > 1 {
		im = resize.Resize(uint(s.size), uint(s.size), im, resize.Bilinear)
	}
	return im
}
