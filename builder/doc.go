// Package builder maps a topology descriptor to its Hückel Hamiltonian.
//
// A Topology is a closed sum type with one variant per supported molecule
// family:
//
//   - Linear{N}:   open polyene chain, bonds i—(i+1).
//   - Cyclic{N}:   closed ring, the chain plus the bond 0—(N−1).
//   - Platonic{N}: cage on the vertex–edge graph of a regular polyhedron,
//     selected by vertex count N ∈ {4, 6, 8, 12, 20}.
//   - Buckyball{}: C60 on the truncated-icosahedron graph.
//
// Build performs an exhaustive match over the variants and returns an n×n
// *matrix.Dense with entry (i,j) = β = −1 when sites i and j are bonded and 0
// otherwise; the diagonal carries α = 0.
//
// Guarantees:
//
//   - Pure and deterministic: identical descriptors yield identical matrices.
//   - Structured errors: out-of-domain sizes wrap huckel.ErrInvalidArgument
//     with the constructor name ("Cyclic: n=2 < min=3: ...").
//   - Polyhedron and fullerene connectivity are fixed tables
//     (variants_platonic.go, variants_fullerene.go), never derived.
package builder
