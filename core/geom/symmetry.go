package geom

import "math"

// Emit appends the full symmetric image of seg to dst and returns the
// extended slice: for each of the order rotational copies (i * 360/order
// degrees about the origin) it emits the rotated segment followed by its
// vertical mirror, 2*order segments in total. Each copy is rotated
// independently from the input segment rather than compounding onto the
// previous copy, so floating-point error does not accumulate across the loop.
//
// order must be >= 2; callers clamp it before it reaches the math.
func Emit(dst []Segment, seg Segment, order int) []Segment {
	step := 2 * math.Pi / float64(order)
	for i := 0; i < order; i++ {
		r := seg.Rotated(float64(i) * step)
		dst = append(dst, r, r.MirroredY())
	}
	return dst
}
