package geom

// Decimate thins c in place. Starting at index from, c is split into
// consecutive groups of every elements and the first element of each group
// is removed; survivors are compacted leftwards in order. The returned slice
// shares c's backing array and is shorter by the number of groups scanned.
//
// With every=2, from=0 the later point of each pair survives:
// [A B C D E F G H] becomes [B D F H].
//
// Contours shorter than every are returned unchanged.
func Decimate(c Contour, every, from int) Contour {
	if every < 1 || from < 0 || len(c) < every {
		return c
	}
	step := 1
	for ; from < len(c); step, from = step+1, from+every {
		for i := 1; i < every && from+i < len(c); i++ {
			c[from+i-step] = c[from+i]
		}
	}
	return c[:len(c)-(step-1)]
}

// Reduce applies Decimate(c, 2, 0) n times, stopping early once c is too
// short to shrink.
func Reduce(c Contour, n int) Contour {
	for ; n > 0 && len(c) >= 2; n-- {
		c = Decimate(c, 2, 0)
	}
	return c
}
