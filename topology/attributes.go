package topology

import (
	"github.com/Panjichuan/gempy/label"
)

// Centroids returns the mean voxel-index coordinate of every label present
// in field. No weighting and no interpolation are applied.
// Complexity: O(V).
func Centroids(field *label.Field) map[label.Label]Point {
	type acc struct {
		x, y, z float64
		n       int
	}
	sums := make(map[label.Label]*acc)
	vol := field.Volume()
	for i := 0; i < vol.Len(); i++ {
		lab := field.At(i)
		a := sums[lab]
		if a == nil {
			a = &acc{}
			sums[lab] = a
		}
		c := vol.Coordinate(i)
		a.x += float64(c.X)
		a.y += float64(c.Y)
		a.z += float64(c.Z)
		a.n++
	}

	out := make(map[label.Label]Point, len(sums))
	for lab, a := range sums {
		n := float64(a.n)
		out[lab] = Point{X: a.x / n, Y: a.y / n, Z: a.z / n}
	}
	return out
}

// Lithologies maps every label present in field to its lithology id, using
// the field's layout and lithology base.
// Returns *label.UnresolvedLithologyError for the first label that does not
// resolve to exactly one lithology.
// Complexity: O(K) for K distinct labels.
func Lithologies(field *label.Field) (map[label.Label]int64, error) {
	tab := label.NewLithologyTable(field.Layout(), field.LithologyBase())
	labels := field.Labels()
	out := make(map[label.Label]int64, len(labels))
	for _, lab := range labels {
		id, err := tab.Lookup(lab)
		if err != nil {
			return nil, err
		}
		out[lab] = id
	}
	return out, nil
}
