// SPDX-License-Identifier: MIT
// Package: huckel/builder
//
// variants_fullerene.go — fixed connectivity of buckminsterfullerene.
//
// C60 is the truncated icosahedron: 60 vertices, 90 edges, 12 pentagons and
// 20 hexagons, every vertex of degree 3. There is no short generator for
// this labeling; the table below is the contract.

package builder

// fullereneBonds lists the 90 C60 bonds, sorted by (U,V) with U < V.
var fullereneBonds = []Bond{
	{U: 0, V: 2}, {U: 0, V: 48}, {U: 0, V: 59}, {U: 1, V: 3}, {U: 1, V: 9}, {U: 1, V: 58},
	{U: 2, V: 3}, {U: 2, V: 36}, {U: 3, V: 17}, {U: 4, V: 6}, {U: 4, V: 8}, {U: 4, V: 12},
	{U: 5, V: 7}, {U: 5, V: 9}, {U: 5, V: 16}, {U: 6, V: 7}, {U: 6, V: 20}, {U: 7, V: 21},
	{U: 8, V: 9}, {U: 8, V: 56}, {U: 10, V: 11}, {U: 10, V: 12}, {U: 10, V: 20}, {U: 11, V: 27},
	{U: 11, V: 47}, {U: 12, V: 13}, {U: 13, V: 46}, {U: 13, V: 54}, {U: 14, V: 15}, {U: 14, V: 16},
	{U: 14, V: 21}, {U: 15, V: 25}, {U: 15, V: 41}, {U: 16, V: 17}, {U: 17, V: 40}, {U: 18, V: 19},
	{U: 18, V: 20}, {U: 18, V: 26}, {U: 19, V: 21}, {U: 19, V: 24}, {U: 22, V: 23}, {U: 22, V: 31},
	{U: 22, V: 34}, {U: 23, V: 25}, {U: 23, V: 38}, {U: 24, V: 25}, {U: 24, V: 30}, {U: 26, V: 27},
	{U: 26, V: 30}, {U: 27, V: 29}, {U: 28, V: 29}, {U: 28, V: 31}, {U: 28, V: 35}, {U: 29, V: 44},
	{U: 30, V: 31}, {U: 32, V: 34}, {U: 32, V: 39}, {U: 32, V: 50}, {U: 33, V: 35}, {U: 33, V: 45},
	{U: 33, V: 51}, {U: 34, V: 35}, {U: 36, V: 37}, {U: 36, V: 40}, {U: 37, V: 39}, {U: 37, V: 52},
	{U: 38, V: 39}, {U: 38, V: 41}, {U: 40, V: 41}, {U: 42, V: 43}, {U: 42, V: 46}, {U: 42, V: 55},
	{U: 43, V: 45}, {U: 43, V: 53}, {U: 44, V: 45}, {U: 44, V: 47}, {U: 46, V: 47}, {U: 48, V: 49},
	{U: 48, V: 52}, {U: 49, V: 53}, {U: 49, V: 57}, {U: 50, V: 51}, {U: 50, V: 52}, {U: 51, V: 53},
	{U: 54, V: 55}, {U: 54, V: 56}, {U: 55, V: 57}, {U: 56, V: 58}, {U: 57, V: 59}, {U: 58, V: 59},
}
