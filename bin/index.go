// Package bin counts ternary data into triangular and hexagonal cells.
//
// Both layouts divide the triangle into a grid of the given size g. Tribin
// uses the g² small triangles (g(g+1)/2 pointing up, g(g-1)/2 pointing
// down); Hexbin uses the (g+1)(g+2)/2 hexagons centred on the grid points,
// clipped to the triangle. Cells are numbered with a serial index that maps
// one-to-one onto the cell coordinates.
package bin

import "math"

// offset returns the serial index of the first cell in row i of a
// triangular array whose first row has n cells.
func offset(i, n int) int {
	return i*n - i*(i-1)/2
}

// TriIndex returns the serial index of (i, j) in a triangular array whose
// row i holds n-i cells. It returns -1 when (i, j) is outside the array.
func TriIndex(i, j, n int) int {
	if i < 0 || j < 0 || i >= n || j >= n-i {
		return -1
	}
	return offset(i, n) + j
}

// TriCoords is the inverse of TriIndex. It returns (-1, -1) when k is not a
// valid index for size n.
func TriCoords(k, n int) (i, j int) {
	if n <= 0 || k < 0 || k >= n*(n+1)/2 {
		return -1, -1
	}
	// Largest i with offset(i) <= k, from the quadratic, then corrected
	// for rounding.
	b := float64(2*n + 1)
	i = int((b - math.Sqrt(b*b-8*float64(k))) / 2)
	i = min(max(i, 0), n-1)
	for i+1 < n && offset(i+1, n) <= k {
		i++
	}
	for i > 0 && offset(i, n) > k {
		i--
	}
	return i, k - offset(i, n)
}

// TriangleCount returns the number of cells of a triangular array of size n.
func TriangleCount(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}
