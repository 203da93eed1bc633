// SPDX-License-Identifier: MIT

package huckel

import "errors"

// ErrInvalidArgument is the single error kind of the domain: a topology size
// outside its valid domain, an unknown Platonic solid, or an empty level list
// handed to the diagram renderer. Subpackages wrap it with context via %w;
// callers branch with errors.Is.
var ErrInvalidArgument = errors.New("huckel: invalid argument")
