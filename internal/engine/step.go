package engine

import "mad-life/internal/core"

// Step writes rows [minRow, maxRow) of dst with the next Life generation of
// src. Only src is read and only the given rows of dst are written, so
// disjoint row ranges may be computed concurrently on the same pair.
func Step(src, dst *core.Grid, minRow, maxRow int) {
	w, h := src.W, src.H
	if minRow < 0 {
		minRow = 0
	}
	if maxRow > h {
		maxRow = h
	}
	cur := src.Cells()
	nxt := dst.Cells()
	for y := minRow; y < maxRow; y++ {
		up := ((y - 1 + h) % h) * w
		mid := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := x - 1
			if left < 0 {
				left = w - 1
			}
			right := x + 1
			if right == w {
				right = 0
			}
			neighbors := b2i(cur[up+left]) + b2i(cur[up+x]) + b2i(cur[up+right]) +
				b2i(cur[mid+left]) + b2i(cur[mid+right]) +
				b2i(cur[down+left]) + b2i(cur[down+x]) + b2i(cur[down+right])
			if cur[mid+x] {
				nxt[mid+x] = neighbors == 2 || neighbors == 3
			} else {
				nxt[mid+x] = neighbors == 3
			}
		}
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
