package goacset

import "errors"

// Errors
var (
	ErrUnmarshal        = errors.New("unmarshal failed")
	ErrBadCatalogParam  = errors.New("bad catalog param")
	ErrInvalidSchema    = errors.New("invalid schema")
	ErrInvalidInstance  = errors.New("invalid instance")
	ErrNotAutomorphism  = errors.New("permutation is not an automorphism")
	ErrNotPermutation   = errors.New("not a permutation")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrEmptyIsos        = errors.New("no candidate isomorphs (identity leaf missing)")
	ErrNilACSet         = errors.New("nil acset")
	ErrBadExpr          = errors.New("bad acset expression")
	ErrTableExpected    = errors.New("table name expected")
	ErrReadOnlyCatalog  = errors.New("catalog is read-only")
	ErrCatalogVers      = errors.New("catalog version is incompatible")
)
