// Package builder defines shared constants used by the Hamiltonian builders,
// ensuring consistent parameters and validation across all topologies.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodLinear is the canonical name for the Linear builder.
	MethodLinear = "Linear"
	// MethodCyclic is the canonical name for the Cyclic builder.
	MethodCyclic = "Cyclic"
	// MethodPlatonic is the canonical name for the Platonic builder.
	MethodPlatonic = "Platonic"
	// MethodBuckyball is the canonical name for the Buckyball builder.
	MethodBuckyball = "Buckyball"
	// MethodBuild is the canonical name for the Build dispatcher.
	MethodBuild = "Build"
)

//-----------------------------------------------------------------------------
// Hückel parameters
//-----------------------------------------------------------------------------

// Alpha is the on-site energy α of every carbon site.
const Alpha = 0.0

// Beta is the nearest-neighbour coupling β between bonded sites.
const Beta = -1.0

//-----------------------------------------------------------------------------
// Minimum site counts
//-----------------------------------------------------------------------------

// MinLinearSites is the smallest chain: a single isolated site.
const MinLinearSites = 1

// MinCyclicSites is the smallest ring that closes without a self-bond or a
// doubled bond.
const MinCyclicSites = 3

// BuckyballSites is the fixed site count of C60.
const BuckyballSites = 60
