// Package diagram renders a degeneracy-grouped spectrum as a text
// energy-level diagram, highest level on top.
//
// Every level becomes one rung: its orbitals drawn side by side as "――"
// bars, centred on a common width of 4·maxDegeneracy − 2 columns, then the
// signed energy label, then a blank spacer line. A closing line reports the
// orbital count:
//
//	  ――     2.000
//
//	――  ――   1.000
//
//	――  ――  -1.000
//
//	  ――    -2.000
//
//	6 orbitals.
package diagram
