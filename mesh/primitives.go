package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ConeSegments is the number of slices around the cone.
const ConeSegments = 36

var (
	up   = mgl32.Vec3{0, 1, 0}
	down = mgl32.Vec3{0, -1, 0}
)

// newPlane spans [-1, 1] on X and Z at y = 0, facing +Y.
func newPlane(subdivisions int) Geometry {
	if subdivisions < 1 {
		subdivisions = 1
	}
	g := Geometry{Kind: Plane}
	n := float32(subdivisions)

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / n
			v := float32(z) / n
			g.Vertices = append(g.Vertices, Vertex{
				Position: mgl32.Vec3{-1 + 2*u, 0, -1 + 2*v},
				Normal:   up,
				UV:       mgl32.Vec2{u, v},
			})
		}
	}

	row := uint32(subdivisions + 1)
	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			tl := uint32(z)*row + uint32(x)
			tr := tl + 1
			bl := tl + row
			br := bl + 1
			g.Indices = append(g.Indices, tl, bl, tr, tr, bl, br)
		}
	}
	return g
}

// boxFaces lists each face of the unit box as its normal and the two axes
// spanning it, chosen so that u × v = normal.
var boxFaces = [6]struct{ normal, u, v mgl32.Vec3 }{
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
}

// newBox is a unit cube centred on the origin with per-face normals.
func newBox() Geometry {
	g := Geometry{Kind: Box}
	corners := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range boxFaces {
		base := uint32(len(g.Vertices))
		centre := f.normal.Mul(0.5)
		for _, c := range corners {
			p := centre.Add(f.u.Mul(c[0] - 0.5)).Add(f.v.Mul(c[1] - 0.5))
			g.Vertices = append(g.Vertices, Vertex{Position: p, Normal: f.normal, UV: c})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return g
}

// newPyramid4 has a unit square base at y = -0.5 and its apex at y = 0.5.
func newPyramid4() Geometry {
	g := Geometry{Kind: Pyramid4}
	const h = 0.5

	base := [4]mgl32.Vec3{
		{-h, -h, -h},
		{h, -h, -h},
		{h, -h, h},
		{-h, -h, h},
	}
	baseUV := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, p := range base {
		g.Vertices = append(g.Vertices, Vertex{Position: p, Normal: down, UV: baseUV[i]})
	}
	g.Indices = append(g.Indices, 0, 1, 2, 0, 2, 3)

	apex := mgl32.Vec3{0, h, 0}
	for i := range base {
		a, b := base[i], base[(i+1)%4]
		normal := apex.Sub(a).Cross(b.Sub(a)).Normalize()
		first := uint32(len(g.Vertices))
		g.Vertices = append(g.Vertices,
			Vertex{Position: a, Normal: normal, UV: mgl32.Vec2{0, 0}},
			Vertex{Position: b, Normal: normal, UV: mgl32.Vec2{1, 0}},
			Vertex{Position: apex, Normal: normal, UV: mgl32.Vec2{0.5, 1}},
		)
		g.Indices = append(g.Indices, first, first+2, first+1)
	}
	return g
}

// newCone has a radius-1 base disc at y = 0 and its tip at y = 1.
func newCone(segments int) Geometry {
	if segments < 3 {
		segments = 3
	}
	g := Geometry{Kind: Cone}
	const radius, height = 1, 1

	slope := math32.Atan2(radius, height)
	ny, nr := math32.Sin(slope), math32.Cos(slope)
	step := 2 * math32.Pi / float32(segments)

	for i := 0; i < segments; i++ {
		t0, t1 := float32(i)*step, float32(i+1)*step
		mid := (t0 + t1) / 2
		c0, s0 := math32.Cos(t0), math32.Sin(t0)
		c1, s1 := math32.Cos(t1), math32.Sin(t1)
		u0, u1 := float32(i)/float32(segments), float32(i+1)/float32(segments)

		first := uint32(len(g.Vertices))
		g.Vertices = append(g.Vertices,
			Vertex{
				Position: mgl32.Vec3{0, height, 0},
				Normal:   mgl32.Vec3{math32.Cos(mid) * nr, ny, math32.Sin(mid) * nr},
				UV:       mgl32.Vec2{(u0 + u1) / 2, 1},
			},
			Vertex{
				Position: mgl32.Vec3{c0 * radius, 0, s0 * radius},
				Normal:   mgl32.Vec3{c0 * nr, ny, s0 * nr},
				UV:       mgl32.Vec2{u0, 0},
			},
			Vertex{
				Position: mgl32.Vec3{c1 * radius, 0, s1 * radius},
				Normal:   mgl32.Vec3{c1 * nr, ny, s1 * nr},
				UV:       mgl32.Vec2{u1, 0},
			},
		)
		g.Indices = append(g.Indices, first, first+2, first+1)
	}

	centre := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{Normal: down, UV: mgl32.Vec2{0.5, 0.5}})
	for i := 0; i < segments; i++ {
		t := float32(i) * step
		c, s := math32.Cos(t), math32.Sin(t)
		g.Vertices = append(g.Vertices, Vertex{
			Position: mgl32.Vec3{c * radius, 0, s * radius},
			Normal:   down,
			UV:       mgl32.Vec2{c*0.5 + 0.5, s*0.5 + 0.5},
		})
	}
	for i := 0; i < segments; i++ {
		a := centre + 1 + uint32(i)
		b := centre + 1 + uint32((i+1)%segments)
		g.Indices = append(g.Indices, centre, a, b)
	}
	return g
}
