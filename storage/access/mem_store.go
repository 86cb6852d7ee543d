package access

import (
	"fmt"

	pair "github.com/notEpsilon/go-pair"
	deadlock "github.com/sasha-s/go-deadlock"

	"github.com/JanyW/sql-layer/storage/disk"
	"github.com/JanyW/sql-layer/storage/row"
)

// MemStore is the reference StoreAdapter: ordered indexes over a
// memory-backed page store. Every mutation it applies is journaled as an
// (old, new) pair, which the tests use to observe adapter traffic.
type MemStore struct {
	latch   deadlock.RWMutex
	store   disk.PageStore
	indexes map[string]*OrderedIndex
	journal []pair.Pair[row.Row, row.Row]

	// set by tests to force the next seek or update to fail
	failNextSeek   error
	failNextUpdate error
}

var _ StoreAdapter = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		store:   disk.NewMemoryPageStore(),
		indexes: make(map[string]*OrderedIndex),
	}
}

// CreateIndex registers an ordered index. ascending must carry one flag per
// ordering field; the remaining leading fields are the fixed prefix.
func (ms *MemStore) CreateIndex(name string, rowType *row.RowType, orderingFields int, ascending []bool) (*OrderedIndex, error) {
	ms.latch.Lock()
	defer ms.latch.Unlock()

	if _, taken := ms.indexes[name]; taken {
		return nil, fmt.Errorf("index %q already exists", name)
	}
	index, err := newOrderedIndex(name, ms.store, rowType, orderingFields, ascending)
	if err != nil {
		return nil, err
	}
	ms.indexes[name] = index
	return index, nil
}

// InsertRow adds one row to the named index.
func (ms *MemStore) InsertRow(indexName string, r row.Row) error {
	ms.latch.Lock()
	defer ms.latch.Unlock()

	index, ok := ms.indexes[indexName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchIndex, indexName)
	}
	_, err := index.insert(r)
	return err
}

func (ms *MemStore) OpenIterator(indexName string, b *Bindings) (OrderedIterator, error) {
	ms.latch.RLock()
	defer ms.latch.RUnlock()

	index, ok := ms.indexes[indexName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchIndex, indexName)
	}
	return &indexIterator{store: ms, index: index}, nil
}

// UpdateRow locates oldRow by its ordering-key hash, replaces it with newRow
// and journals the pair. Both rows must share the index RowType.
func (ms *MemStore) UpdateRow(oldRow, newRow row.Row, b *Bindings) error {
	ms.latch.Lock()
	defer ms.latch.Unlock()

	if err := ms.failNextUpdate; err != nil {
		ms.failNextUpdate = nil
		return err
	}

	index := ms.indexForRowType(oldRow.RowType())
	if index == nil {
		return fmt.Errorf("%w: no index for %s", ErrNoSuchRow, oldRow.RowType())
	}
	at, found := index.lookupByRow(oldRow)
	if !found {
		return fmt.Errorf("%w: %s", ErrNoSuchRow, oldRow)
	}
	if err := index.replaceAt(at, newRow); err != nil {
		return err
	}
	ms.journal = append(ms.journal, pair.Pair[row.Row, row.Row]{First: oldRow, Second: newRow})
	return nil
}

// Journal returns the applied mutations in commit order.
func (ms *MemStore) Journal() []pair.Pair[row.Row, row.Row] {
	ms.latch.RLock()
	defer ms.latch.RUnlock()

	journal := make([]pair.Pair[row.Row, row.Row], len(ms.journal))
	copy(journal, ms.journal)
	return journal
}

// FailNextSeek arranges for the next SeekGE on any iterator to return err.
func (ms *MemStore) FailNextSeek(err error) { ms.failNextSeek = err }

// FailNextUpdate arranges for the next UpdateRow to return err.
func (ms *MemStore) FailNextUpdate(err error) { ms.failNextUpdate = err }

func (ms *MemStore) indexForRowType(rowType *row.RowType) *OrderedIndex {
	for _, index := range ms.indexes {
		if index.rowType == rowType {
			return index
		}
	}
	return nil
}

// indexIterator walks one index in order. Entries inserted after the
// iterator is opened are visible; the execution layer is single-threaded per
// query, so this never surprises a running cursor tree.
type indexIterator struct {
	store  *MemStore
	index  *OrderedIndex
	pos    int
	closed bool
}

func (it *indexIterator) Next() (row.Row, bool, error) {
	if it.closed || it.pos >= it.index.length() {
		return nil, true, nil
	}
	r, err := it.index.rowAt(it.pos)
	if err != nil {
		return nil, true, err
	}
	it.pos++
	return r, false, nil
}

// SeekGE repositions the iterator, reviving it if a previous scan ran it to
// the end and closed it.
func (it *indexIterator) SeekGE(target row.Row, selector row.ColumnSelector) error {
	if err := it.store.failNextSeek; err != nil {
		it.store.failNextSeek = nil
		return err
	}
	it.pos = it.index.seekPosition(target, selector)
	it.closed = false
	return nil
}

func (it *indexIterator) Close() {
	it.closed = true
}
