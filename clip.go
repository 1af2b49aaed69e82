package velvet

// Clip-space clipping against the six planes |x|,|y|,|z| <= w, run only
// for primitives with at least one vertex outside the volume.

type clipPlane struct {
	axis int
	sign float64
}

var clipPlanes = [6]clipPlane{
	{0, 1}, {0, -1},
	{1, 1}, {1, -1},
	{2, 1}, {2, -1},
}

// clipDistance is >= 0 when the vertex is inside the plane.
func (p clipPlane) clipDistance(v Vertex) float64 {
	return v.Output[3] - p.sign*v.Output[p.axis]
}

func clipPolygon(points []Vertex) []Vertex {
	output := points
	for _, plane := range clipPlanes {
		input := output
		if len(input) == 0 {
			return nil
		}
		output = nil
		s := input[len(input)-1]
		ds := plane.clipDistance(s)
		for _, e := range input {
			de := plane.clipDistance(e)
			if de >= 0 {
				if ds < 0 {
					output = append(output, s.Lerp(e, ds/(ds-de)))
				}
				output = append(output, e)
			} else if ds >= 0 {
				output = append(output, s.Lerp(e, ds/(ds-de)))
			}
			s, ds = e, de
		}
	}
	return output
}

// ClipTriangle clips a triangle against the viewing volume, returning
// zero or more triangles fanned from the clipped polygon.
func ClipTriangle(t *Triangle) []*Triangle {
	poly := clipPolygon([]Vertex{t.V1, t.V2, t.V3})
	var result []*Triangle
	for i := 2; i < len(poly); i++ {
		result = append(result, NewTriangle(poly[0], poly[i-1], poly[i]))
	}
	return result
}

// ClipLine clips a line segment against the viewing volume, returning
// nil when nothing remains.
func ClipLine(l *Line) *Line {
	v1, v2 := l.V1, l.V2
	for _, plane := range clipPlanes {
		d1 := plane.clipDistance(v1)
		d2 := plane.clipDistance(v2)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = v1.Lerp(v2, d1/(d1-d2))
		} else if d2 < 0 {
			v2 = v2.Lerp(v1, d2/(d2-d1))
		}
	}
	return NewLine(v1, v2)
}
