package mesh

import "math"

// floatsPerVertex is the interleaved vertex layout width:
// position (3) + normal (3) + UV (2).
const floatsPerVertex = 8

// planeGeometry builds a 2x2 plane in the XZ plane facing +Y,
// with UVs spanning the full texture.
func planeGeometry() ([]float32, []uint32) {
	vertices := []float32{
		// x, y, z, nx, ny, nz, u, v
		-1, 0, -1, 0, 1, 0, 0, 1,
		1, 0, -1, 0, 1, 0, 1, 1,
		1, 0, 1, 0, 1, 0, 1, 0,
		-1, 0, 1, 0, 1, 0, 0, 0,
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}
	return vertices, indices
}

// boxGeometry builds a unit cube centered at the origin with per-face
// normals and UVs, 4 vertices per face.
func boxGeometry() ([]float32, []uint32) {
	type face struct {
		normal [3]float32
		// corners in counter-clockwise order viewed from outside
		corners [4][3]float32
	}
	h := float32(0.5)
	faces := []face{
		{normal: [3]float32{0, 0, 1}, corners: [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{normal: [3]float32{0, 0, -1}, corners: [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{normal: [3]float32{1, 0, 0}, corners: [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{normal: [3]float32{-1, 0, 0}, corners: [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{normal: [3]float32{0, 1, 0}, corners: [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{normal: [3]float32{0, -1, 0}, corners: [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, len(faces)*4*floatsPerVertex)
	indices := make([]uint32, 0, len(faces)*6)
	for fi, f := range faces {
		for ci, c := range f.corners {
			vertices = append(vertices,
				c[0], c[1], c[2],
				f.normal[0], f.normal[1], f.normal[2],
				uvs[ci][0], uvs[ci][1],
			)
		}
		base := uint32(fi * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// cylinderGeometry builds a cylinder of radius 1 with its base at y=0 and
// top at y=1: a smooth-shaded side wall plus flat top and bottom caps.
func cylinderGeometry(segments int) ([]float32, []uint32) {
	vertices := make([]float32, 0, (segments+1)*2*floatsPerVertex)
	indices := make([]uint32, 0, segments*12)

	// Side wall: two rings of shared vertices, seam duplicated for UV wrap.
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		u := float32(i) / float32(segments)
		vertices = append(vertices,
			x, 0, z, x, 0, z, u, 0,
			x, 1, z, x, 0, z, u, 1,
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}

	// Caps: a center vertex plus a flat-shaded ring each.
	buildCap := func(y, ny float32) {
		center := uint32(len(vertices) / floatsPerVertex)
		vertices = append(vertices, 0, y, 0, 0, ny, 0, 0.5, 0.5)
		for i := 0; i <= segments; i++ {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			x := float32(math.Cos(theta))
			z := float32(math.Sin(theta))
			vertices = append(vertices, x, y, z, 0, ny, 0, 0.5+x/2, 0.5+z/2)
		}
		for i := 0; i < segments; i++ {
			a := center + 1 + uint32(i)
			b := center + 2 + uint32(i)
			if ny > 0 {
				indices = append(indices, center, b, a)
			} else {
				indices = append(indices, center, a, b)
			}
		}
	}
	buildCap(1, 1)
	buildCap(0, -1)

	return vertices, indices
}

// torusGeometry builds a torus around the Z axis with ring radius 1 and the
// given tube radius.
func torusGeometry(radialSegments, tubularSegments int, tubeRadius float32) ([]float32, []uint32) {
	vertices := make([]float32, 0, (radialSegments+1)*(tubularSegments+1)*floatsPerVertex)
	indices := make([]uint32, 0, radialSegments*tubularSegments*6)

	for i := 0; i <= radialSegments; i++ {
		u := 2 * math.Pi * float64(i) / float64(radialSegments)
		cu, su := float32(math.Cos(u)), float32(math.Sin(u))
		for j := 0; j <= tubularSegments; j++ {
			v := 2 * math.Pi * float64(j) / float64(tubularSegments)
			cv, sv := float32(math.Cos(v)), float32(math.Sin(v))

			x := (1 + tubeRadius*cv) * cu
			y := (1 + tubeRadius*cv) * su
			z := tubeRadius * sv
			vertices = append(vertices,
				x, y, z,
				cv*cu, cv*su, sv,
				float32(i)/float32(radialSegments), float32(j)/float32(tubularSegments),
			)
		}
	}

	ring := uint32(tubularSegments + 1)
	for i := 0; i < radialSegments; i++ {
		for j := 0; j < tubularSegments; j++ {
			a := uint32(i)*ring + uint32(j)
			b := a + ring
			indices = append(indices,
				a, b, a+1,
				b, b+1, a+1,
			)
		}
	}

	return vertices, indices
}
