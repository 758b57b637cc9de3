package libacset

import (
	"github.com/dgraph-io/badger/v3"

	"github.com/acset-systems/goacset/goacset"
)

// NewCanonicSet returns an in-memory CanonicSet.
func NewCanonicSet() goacset.CanonicSet {
	return &canonicSet{}
}

type canonicSet struct {
	lsmSet
}

func (cs *canonicSet) TryAdd(X goacset.CanonicForm) bool {
	hash, err := X.CanonicHash()
	if err != nil {
		return false
	}
	var keyBuf [192]byte
	key := appendHashKey(keyBuf[:0], hash)
	key, err = X.AppendCanonicEncoding(key)
	if err != nil {
		return false
	}
	return cs.tryAdd(key)
}

func appendHashKey(key []byte, hash uint64) []byte {
	return append(key,
		byte(hash>>56),
		byte(hash>>48),
		byte(hash>>40),
		byte(hash>>32),
		byte(hash>>24),
		byte(hash>>16),
		byte(hash>>8),
		byte(hash),
		0, 0)
}

// lsmSet is a throwaway in-memory key set backed by badger.
type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		db, err := badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
		set.db = db
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	added := false
	err := set.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			added = true
			return txn.Set(key, nil)
		}
		return err
	})
	if err != nil {
		panic(err)
	}
	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
