package game

import "math"

// Vertex layout: position (3) + normal (3).
const vertexFloats = 6

// cubeVertices returns a unit cube centred at the origin as triangles.
func cubeVertices() []float32 {
	faces := []struct {
		n    [3]float32
		u, v [3]float32
	}{
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
	}
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

	buf := make([]float32, 0, 36*vertexFloats)
	for _, f := range faces {
		for _, c := range corners {
			for i := 0; i < 3; i++ {
				buf = append(buf, 0.5*(f.n[i]+c[0]*f.u[i]+c[1]*f.v[i]))
			}
			buf = append(buf, f.n[0], f.n[1], f.n[2])
		}
	}
	return buf
}

// sphereVertices returns a unit-radius UV sphere as triangles.
func sphereVertices(stacks, slices int) []float32 {
	point := func(i, j int) [3]float32 {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		sp, cp := math.Sincos(phi)
		st, ct := math.Sincos(theta)
		return [3]float32{float32(sp * ct), float32(cp), float32(sp * st)}
	}
	buf := make([]float32, 0, stacks*slices*6*vertexFloats)
	emit := func(p [3]float32) {
		// On a unit sphere the position is its own normal.
		buf = append(buf, p[0], p[1], p[2], p[0], p[1], p[2])
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a, b := point(i, j), point(i+1, j)
			c, d := point(i+1, j+1), point(i, j+1)
			emit(a)
			emit(d)
			emit(c)
			emit(a)
			emit(c)
			emit(b)
		}
	}
	return buf
}

// torusVertices returns a torus around the Z axis, tube radius inner and
// ring radius outer, as triangles.
func torusVertices(inner, outer float64, sides, rings int) []float32 {
	type vert struct{ p, n [3]float32 }
	at := func(i, j int) vert {
		u := 2 * math.Pi * float64(i) / float64(rings)
		v := 2 * math.Pi * float64(j) / float64(sides)
		su, cu := math.Sincos(u)
		sv, cv := math.Sincos(v)
		r := outer + inner*cv
		return vert{
			p: [3]float32{float32(r * cu), float32(r * su), float32(inner * sv)},
			n: [3]float32{float32(cv * cu), float32(cv * su), float32(sv)},
		}
	}
	buf := make([]float32, 0, rings*sides*6*vertexFloats)
	emit := func(v vert) {
		buf = append(buf, v.p[0], v.p[1], v.p[2], v.n[0], v.n[1], v.n[2])
	}
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a, b := at(i, j), at(i+1, j)
			c, d := at(i+1, j+1), at(i, j+1)
			emit(a)
			emit(b)
			emit(c)
			emit(a)
			emit(c)
			emit(d)
		}
	}
	return buf
}

// axisVertices returns the X, Y and Z reference axes as three line
// segments from the origin.
func axisVertices(length float32) []float32 {
	return []float32{
		0, 0, 0, 0, 0, 0, length, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, length, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, length, 0, 0, 0,
	}
}
