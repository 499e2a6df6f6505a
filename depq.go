package depq

import "cmp"

// Prioritized is the contract for elements held by the containers in this
// module: a single accessor exposing a totally ordered priority. Containers
// order elements solely by this value; all other element state is carried
// opaquely.
type Prioritized[P cmp.Ordered] interface {
	Priority() P
}
