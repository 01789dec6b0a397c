package holding

import (
	"iter"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"persp3d/internal/physics"
)

// rectCandidates spreads rows x cols points evenly across the rectangle,
// on its depth plane. Degenerate counts collapse to the rectangle center.
func rectCandidates(rect screenRect, rows, cols int) []rl.Vector3 {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	center := rect.Center()
	points := make([]rl.Vector3, 0, rows*cols)
	for row := 0; row < rows; row++ {
		y := center.Y
		if rows > 1 {
			y = rect.Bottom + rect.Height()*float32(row)/float32(rows-1)
		}
		for col := 0; col < cols; col++ {
			x := center.X
			if cols > 1 {
				x = rect.Left + rect.Width()*float32(col)/float32(cols-1)
			}
			points = append(points, rl.Vector3{X: x, Y: y, Z: rect.Depth})
		}
	}
	return points
}

// polarCandidates produces a center point plus rings x sectors points laid
// out elliptically in the rectangle. Ring radius goes as t^(1/edgeBias) for
// ring fraction t, so edgeBias > 1 packs samples toward the silhouette edge
// where contacts happen. Points are clamped into the rectangle.
func polarCandidates(rect screenRect, rings, sectors int, edgeBias float32) []rl.Vector3 {
	if rings < 1 {
		rings = 1
	}
	if sectors < 1 {
		sectors = 1
	}
	if edgeBias <= 0 {
		edgeBias = 1
	}
	center := rect.Center()
	halfW := rect.Width() / 2
	halfH := rect.Height() / 2

	points := make([]rl.Vector3, 0, 1+rings*sectors)
	points = append(points, rl.Vector3{X: center.X, Y: center.Y, Z: rect.Depth})

	for ring := 1; ring <= rings; ring++ {
		t := float64(ring) / float64(rings)
		f := float32(math.Pow(t, 1/float64(edgeBias)))
		for sector := 0; sector < sectors; sector++ {
			angle := 2 * math.Pi * float64(sector) / float64(sectors)
			x := center.X + f*halfW*float32(math.Cos(angle))
			y := center.Y + f*halfH*float32(math.Sin(angle))
			points = append(points, rl.Vector3{
				X: rect.clampX(x),
				Y: rect.clampY(y),
				Z: rect.Depth,
			})
		}
	}
	return points
}

func candidatePoints(rect screenRect, s Settings) []rl.Vector3 {
	if s.GridMode == GridRectangular {
		return rectCandidates(rect, s.GridRows, s.GridCols)
	}
	return polarCandidates(rect, s.GridRings, s.GridSectors, s.EdgeBias)
}

// silhouetteFrom filters the candidate grid down to points whose ray from
// the camera's near plane actually intersects one of the object's own
// colliders: points on the true silhouette, not just the bounding
// rectangle. The sequence is lazy and fully restartable; every iteration
// regenerates and refilters from the current pose, never from stale state.
// Zero survivors is a valid outcome.
func (h *Holdable) silhouetteFrom(rect screenRect) iter.Seq[rl.Vector3] {
	return func(yield func(rl.Vector3) bool) {
		for _, c := range candidatePoints(rect, h.Coord.Settings) {
			if !h.selfRayHits(c) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// SilhouetteSamples rebuilds the silhouette grid for the object's current
// pose. Only meaningful while held.
func (h *Holdable) SilhouetteSamples() iter.Seq[rl.Vector3] {
	rect := projectedRect(h.cameraSpaceBoundsCorners())
	return h.silhouetteFrom(rect)
}

// selfRayHits casts from the near-plane projection of the camera-space
// point toward the point and reports whether any of the object's own
// colliders is intersected. The object's colliders sit on the
// ignore-raycast layer while held, so this bypasses the world query and
// tests them directly. The proxy collider is skipped: it spans the whole
// bounding rectangle and would defeat the silhouette filter.
func (h *Holdable) selfRayHits(c rl.Vector3) bool {
	cam := h.Coord.Camera
	target := cam.CameraToWorld(c)
	origin := cam.NearPlanePoint(target)
	dir := rl.Vector3Subtract(target, origin)
	if rl.Vector3Length(dir) == 0 {
		return false
	}
	dir = rl.Vector3Normalize(dir)

	for _, col := range objectColliders(h.GetGameObject()) {
		if h.proxy != nil && col == physics.Collider(h.proxy) {
			continue
		}
		if _, ok := col.RayIntersect(origin, dir, h.Coord.Settings.MaxDistance); ok {
			return true
		}
	}
	return false
}
