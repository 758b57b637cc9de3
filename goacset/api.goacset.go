package goacset

const (
	// MaxTables is the max number of tables a schema may declare.
	MaxTables = 255

	// MaxDepth is a nominal individualization depth for a single search branch.
	// The search does not check it; a branch individualizes at most one
	// element per structure element.
	MaxDepth = 1 << 16
)

// SearchOpts are per-invocation toggles on the automorphism search.
//
// Any combination of pruning tactics yields the same canonical hash and the
// same orbit partition; only the size of the returned generator set varies.
type SearchOpts struct {
	AutoPrune  bool // skip subtrees mapped onto already-explored siblings by a discovered automorphism
	OrbitPrune bool // skip splitting elements in the orbit of an already-visited sibling
	OrderPrune bool // abandon paths lexicographically dominated by the best indicator sequence
	History    bool // record an Event log of the search (diagnostic only, never affects results)
}

// DefaultSearchOpts enables the two always-safe pruning tactics.
var DefaultSearchOpts = SearchOpts{
	AutoPrune:  true,
	OrbitPrune: true,
}

// EventKind tags a search history Event.
type EventKind int32

const (
	EvStartIter EventKind = iota + 1
	EvAddLeaf
	EvAutoPrune
	EvOrbitPrune
	EvOrderPrune
	EvFlagSkip
	EvNewChild
	EvReturn
)

var eventNames = map[EventKind]string{
	EvStartIter:  "start_iter",
	EvAddLeaf:    "add_leaf",
	EvAutoPrune:  "auto_prune",
	EvOrbitPrune: "orbit_prune",
	EvOrderPrune: "order_prune",
	EvFlagSkip:   "flag_skip",
	EvNewChild:   "new_child",
	EvReturn:     "return",
}

func (kind EventKind) String() string {
	if s, ok := eventNames[kind]; ok {
		return s
	}
	return "unknown"
}

// Event is one entry of a search history log.
// Consumers should treat the payload as opaque debugging output.
type Event struct {
	Kind  EventKind
	Path  string // encoded node path at the time of the event
	Table int32  // splitting table (when applicable)
	Elem  int32  // individualized element, one-based (when applicable)
}

// CanonicForm is the engine-facing view the catalog needs of a canonicalized
// instance: a stable 64-bit hash and a stable binary rendering.
type CanonicForm interface {

	// CanonicHash returns the canonical hash of this instance's iso class.
	CanonicHash() (uint64, error)

	// AppendCanonicEncoding appends the canonical instance's stable binary
	// encoding to buf.
	AppendCanonicEncoding(buf []byte) ([]byte, error)
}

// CanonicSet allows adding canonical forms and reports whether an equivalent
// (isomorphic) structure has already been added.
type CanonicSet interface {

	// TryAdd adds the given form if its iso class is not already present.
	//
	// If an isomorphic structure already is in this CanonicSet, this call has
	// no effect and TryAdd() returns false.
	TryAdd(X CanonicForm) bool

	// Close removes all previously added items from this set.
	Close()
}

// CatalogOpts specifies params for opening a catalog of canonical forms.
type CatalogOpts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
}

// Catalog wraps a database of canonical instance encodings keyed by their
// canonical hash.
type Catalog interface {

	// TryAdd adds the canonical form of X if its iso class is not yet present.
	// If true is returned, X did not exist and was added.
	TryAdd(X CanonicForm) (bool, error)

	// Contains reports whether X's iso class has been added.
	Contains(X CanonicForm) (bool, error)

	// NumCanonic returns the number of distinct iso classes in this catalog.
	NumCanonic() int64

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// Select fires onHit with every stored canonical encoding, in hash order,
	// until onHit returns false.
	Select(onHit func(hash uint64, def []byte) bool) error

	Close() error
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Signals all open catalogs to close, then closes.
	Close()

	// Signals when Close() completed and all open Catalogs have been closed.
	Done() <-chan struct{}
}
