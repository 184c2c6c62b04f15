package system

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

const (
	tagPlatform = "platform"
	cellSize    = 32
)

// PlatformSet holds the static obstacles of a level and answers broad-phase
// queries through a resolv space. Platforms with a non-positive extent are dropped.
type PlatformSet struct {
	platforms []entity.Platform
	space     *resolv.Space

	// origin maps world coordinates into the space, which starts at (0, 0)
	originX, originY float64
	spaceW, spaceH   float64
}

// NewPlatformSet registers the valid platforms inside a world of the given size
func NewPlatformSet(platforms []entity.Platform, width, height float64) *PlatformSet {
	s := &PlatformSet{}
	world := entity.Rect{W: math.Max(width, 1), H: math.Max(height, 1)}
	for _, p := range platforms {
		if !p.Bounds.Valid() {
			continue
		}
		s.platforms = append(s.platforms, p)
		world = world.Union(p.Bounds)
	}

	s.originX, s.originY = world.X, world.Y
	// resolv sizes the grid in whole cells, rounding down
	spaceW := (int(math.Ceil(world.W/cellSize)) + 1) * cellSize
	spaceH := (int(math.Ceil(world.H/cellSize)) + 1) * cellSize
	s.space = resolv.NewSpace(spaceW, spaceH, cellSize, cellSize)
	s.spaceW, s.spaceH = float64(spaceW), float64(spaceH)

	for i, p := range s.platforms {
		b := p.Bounds
		obj := resolv.NewObject(b.X-s.originX, b.Y-s.originY, b.W, b.H, tagPlatform)
		obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
		obj.Data = i
		s.space.Add(obj)
	}
	return s
}

// Len returns the number of registered platforms
func (s *PlatformSet) Len() int {
	return len(s.platforms)
}

// At returns the i-th registered platform
func (s *PlatformSet) At(i int) entity.Platform {
	return s.platforms[i]
}

// Platforms returns the registered platforms in collection order
func (s *PlatformSet) Platforms() []entity.Platform {
	return s.platforms
}

// Candidates returns the indices of platforms sharing a broad-phase cell with r,
// in collection order. Callers still test exact overlap.
func (s *PlatformSet) Candidates(r entity.Rect) []int {
	if !r.Valid() || len(s.platforms) == 0 {
		return nil
	}

	// Every platform lies inside the space, so clipping the probe loses nothing
	// and keeps the cell walk bounded for long sweeps.
	x0 := math.Max(r.X-s.originX, 0)
	y0 := math.Max(r.Y-s.originY, 0)
	x1 := math.Min(r.Right()-s.originX, s.spaceW)
	y1 := math.Min(r.Bottom()-s.originY, s.spaceH)
	if x1 <= x0 || y1 <= y0 {
		return nil
	}

	probe := resolv.NewObject(x0, y0, x1-x0, y1-y0)
	s.space.Add(probe)
	col := probe.Check(0, 0, tagPlatform)
	s.space.Remove(probe)
	if col == nil {
		return nil
	}

	idx := make([]int, 0, len(col.Objects))
	for _, o := range col.Objects {
		if i, ok := o.Data.(int); ok {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)
	return idx
}

// Overlapping returns the indices of platforms whose bounds overlap r, in collection order
func (s *PlatformSet) Overlapping(r entity.Rect) []int {
	var hits []int
	for _, i := range s.Candidates(r) {
		if r.Overlaps(s.platforms[i].Bounds) {
			hits = append(hits, i)
		}
	}
	return hits
}
