package seam

import "github.com/joshuapare/seamkit/seam/splice"

// ErrNotAdjacent indicates a merge that cannot be performed: an operand
// lies outside the witnessed allocation, or the operands do not touch in
// the required order. The causes are deliberately not distinguished; both
// mean "no combined view of this memory exists".
//
// Shares its value with splice.ErrNotAdjacent, so errors.Is matches
// through either package.
var ErrNotAdjacent = splice.ErrNotAdjacent
