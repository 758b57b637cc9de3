package catalog

import (
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/acset-systems/goacset/goacset"
	"github.com/acset-systems/goacset/libacset/def"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	hash (8 bytes, big-endian), NUL, NUL, CanonicEncoding => InstanceDef

One entry per iso class: the key carries the canonical hash plus the full
canonical encoding (so hash collisions cannot merge distinct classes), the
value is the canonical representative's wire form.

***/

var gCatalogStateKey = []byte{0x00, 0x00, 0x01}

const (
	catalogMajorVers = 2026
	catalogMinorVers = 1
)

// catalog is a db wrapper for a canonical-form catalog.
type catalog struct {
	ctx        goacset.CatalogContext
	readOnly   bool
	stateDirty bool
	state      def.CatalogState
	db         *badger.DB
}

// defProvider is implemented by forms that can render their canonical
// representative as an InstanceDef; others are stored by raw encoding.
type defProvider interface {
	CanonicInstanceDef() (*def.InstanceDef, error)
}

func OpenCatalog(ctx goacset.CatalogContext, opts goacset.CatalogOpts) (goacset.Catalog, error) {
	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single-writer, disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(goacset.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog db")
	}

	// Once the db is open, the catalog ctx blocks until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = catalogMajorVers
		cat.state.MinorVers = catalogMinorVers
	}

	if err == nil && (cat.state.MajorVers != catalogMajorVers || cat.state.MinorVers != catalogMinorVers) {
		err = goacset.ErrCatalogVers
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	klog.V(2).Infof("opened catalog %q (%d iso classes)", opts.DbPathName, cat.state.NumCanonic)
	return cat, nil
}

func (cat *catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cat.state.Unmarshal(val)
		})
	})
}

func (cat *catalog) flushState() {
	if !cat.stateDirty || cat.readOnly {
		return
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		stateBuf, err := cat.state.Marshal()
		if err != nil {
			return err
		}
		return txn.Set(gCatalogStateKey, stateBuf)
	})
	if err != nil {
		panic(err)
	}
	cat.stateDirty = false
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumCanonic() int64 {
	return cat.state.NumCanonic
}

func formCatalogKey(key []byte, hash uint64, X goacset.CanonicForm) ([]byte, error) {
	key = append(key,
		byte(hash>>56),
		byte(hash>>48),
		byte(hash>>40),
		byte(hash>>32),
		byte(hash>>24),
		byte(hash>>16),
		byte(hash>>8),
		byte(hash),
		0, 0)
	return X.AppendCanonicEncoding(key)
}

// TryAdd adds the canonical form of X if its iso class is not yet present.
func (cat *catalog) TryAdd(X goacset.CanonicForm) (bool, error) {
	if cat.readOnly {
		return false, goacset.ErrReadOnlyCatalog
	}

	hash, err := X.CanonicHash()
	if err != nil {
		return false, err
	}
	var keyBuf [256]byte
	key, err := formCatalogKey(keyBuf[:0], hash, X)
	if err != nil {
		return false, err
	}

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err = txn.Get(key)
	if err == nil {
		return false, nil
	}
	if err != badger.ErrKeyNotFound {
		return false, errors.Wrap(err, "catalog lookup failed")
	}

	var val []byte
	if dp, ok := X.(defProvider); ok {
		idef, err := dp.CanonicInstanceDef()
		if err != nil {
			return false, err
		}
		val, err = idef.Marshal()
		if err != nil {
			return false, err
		}
	} else {
		val, err = X.AppendCanonicEncoding(nil)
		if err != nil {
			return false, err
		}
	}

	if err = txn.Set(key, val); err != nil {
		return false, errors.Wrap(err, "catalog write failed")
	}
	if err = txn.Commit(); err != nil {
		return false, errors.Wrap(err, "catalog commit failed")
	}

	cat.state.NumCanonic++
	cat.stateDirty = true
	klog.V(2).Infof("catalog: added iso class %016x (%d total)", hash, cat.state.NumCanonic)
	return true, nil
}

// Contains reports whether X's iso class has been added.
func (cat *catalog) Contains(X goacset.CanonicForm) (bool, error) {
	hash, err := X.CanonicHash()
	if err != nil {
		return false, err
	}
	var keyBuf [256]byte
	key, err := formCatalogKey(keyBuf[:0], hash, X)
	if err != nil {
		return false, err
	}

	found := false
	err = cat.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err == nil {
			found = true
		}
		return err
	})
	return found, err
}

// Select fires onHit with every stored canonical record, in hash order.
func (cat *catalog) Select(onHit func(hash uint64, defBytes []byte) bool) error {
	return cat.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   128,
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := item.Key()
			if len(key) < 10 {
				continue // state record
			}
			hash := uint64(key[0])<<56 | uint64(key[1])<<48 | uint64(key[2])<<40 | uint64(key[3])<<32 |
				uint64(key[4])<<24 | uint64(key[5])<<16 | uint64(key[6])<<8 | uint64(key[7])

			keep := true
			err := item.Value(func(val []byte) error {
				keep = onHit(hash, val)
				return nil
			})
			if err != nil {
				return err
			}
			if !keep {
				return nil
			}
		}
		return nil
	})
}
