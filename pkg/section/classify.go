package section

import (
	"math"
	"sort"
)

// ringInfo tracks one ring through classification. parent is the index
// of the containing outer ring for holes, -1 otherwise.
type ringInfo struct {
	ring   Ring
	area   float64
	hole   bool
	parent int
}

// classify sorts rings by descending absolute area and walks them
// largest first. A ring is a hole when its centroid lies inside a larger
// ring that is not itself a hole; the smallest such ring becomes its
// parent. Only one level of nesting is resolved; islands inside holes
// are classified best-effort.
func classify(rings []Ring) []ringInfo {
	infos := make([]ringInfo, len(rings))
	for i, r := range rings {
		infos[i] = ringInfo{ring: r, area: r.SignedArea(), parent: -1}
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return math.Abs(infos[i].area) > math.Abs(infos[j].area)
	})

	for i := range infos {
		c := infos[i].ring.Centroid()
		for j := i - 1; j >= 0; j-- {
			if infos[j].hole {
				continue
			}
			if infos[j].ring.Contains(c) {
				infos[i].hole = true
				infos[i].parent = j
				break
			}
		}
	}
	return infos
}

// Classify separates rings into outer boundaries and holes. Every ring
// lands in exactly one of the two results, each ordered by decreasing
// area.
func Classify(rings []Ring) (outers, holes []Ring) {
	for _, info := range classify(rings) {
		if info.hole {
			holes = append(holes, info.ring)
		} else {
			outers = append(outers, info.ring)
		}
	}
	return outers, holes
}

// BuildPolygons groups classified rings into polygons, one per outer
// ring, each carrying the holes whose parent it is.
func BuildPolygons(rings []Ring) []Polygon {
	infos := classify(rings)
	slot := make(map[int]int, len(infos))
	var polys []Polygon
	for i, info := range infos {
		if info.hole {
			continue
		}
		slot[i] = len(polys)
		polys = append(polys, Polygon{Outer: info.ring})
	}
	for _, info := range infos {
		if !info.hole {
			continue
		}
		p := &polys[slot[info.parent]]
		p.Holes = append(p.Holes, info.ring)
	}
	return polys
}
