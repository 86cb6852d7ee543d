package access

import (
	"fmt"
	"sort"

	"github.com/spaolacci/murmur3"

	"github.com/JanyW/sql-layer/common"
	"github.com/JanyW/sql-layer/storage/disk"
	"github.com/JanyW/sql-layer/storage/row"
)

type indexEntry struct {
	key *row.ValuesRow
	rid disk.RID
}

// OrderedIndex keeps one RowType's rows sorted by the declared per-field
// directions. Fixed (leading) fields always compare ascending; the trailing
// orderingFields follow the ascending flags. Row bytes live in the heap; the
// entry list holds materialized keys for comparison plus a murmur3 hash
// index over the ordering key for point lookups.
type OrderedIndex struct {
	name           string
	rowType        *row.RowType
	orderingFields int
	ascending      []bool
	heap           *disk.RowHeap
	entries        []indexEntry
	keyHash        map[uint64][]disk.RID
}

func newOrderedIndex(name string, store disk.PageStore, rowType *row.RowType, orderingFields int, ascending []bool) (*OrderedIndex, error) {
	if orderingFields < 0 || orderingFields > rowType.NFields() {
		return nil, fmt.Errorf("ordering field count %d out of range for %s", orderingFields, rowType)
	}
	if len(ascending) != orderingFields {
		return nil, fmt.Errorf("ascending flags length %d does not match ordering field count %d", len(ascending), orderingFields)
	}
	directions := make([]bool, len(ascending))
	copy(directions, ascending)
	return &OrderedIndex{
		name:           name,
		rowType:        rowType,
		orderingFields: orderingFields,
		ascending:      directions,
		heap:           disk.NewRowHeap(store, rowType),
		keyHash:        make(map[uint64][]disk.RID),
	}, nil
}

func (idx *OrderedIndex) RowType() *row.RowType { return idx.rowType }

func (idx *OrderedIndex) fixedFields() int {
	return idx.rowType.NFields() - idx.orderingFields
}

// compareAt orders r against the entry key at positions the selector admits.
// A null target field is a logical-minimum sentinel: any non-null entry value
// sorts after it regardless of direction.
func (idx *OrderedIndex) compareToTarget(entry *row.ValuesRow, target row.Row, selector row.ColumnSelector) int {
	for pos := 0; pos < idx.rowType.NFields(); pos++ {
		if selector != nil && !selector.IncludesColumn(pos) {
			continue
		}
		targetValue := target.Value(pos)
		entryValue := entry.Value(pos)
		if targetValue.IsNull() {
			if entryValue.IsNull() {
				continue
			}
			return 1
		}
		c := entryValue.Compare(targetValue)
		if c != 0 {
			if idx.descendingAt(pos) {
				c = -c
			}
			return c
		}
	}
	return 0
}

func (idx *OrderedIndex) descendingAt(pos int) bool {
	ordering := pos - idx.fixedFields()
	return ordering >= 0 && !idx.ascending[ordering]
}

func (idx *OrderedIndex) entryLess(a, b *row.ValuesRow) bool {
	for pos := 0; pos < idx.rowType.NFields(); pos++ {
		c := a.Value(pos).Compare(b.Value(pos))
		if c != 0 {
			if idx.descendingAt(pos) {
				c = -c
			}
			return c < 0
		}
	}
	return false
}

// insert appends the row to the heap and splices its entry into sorted
// position. Equal keys insert after existing ones, preserving arrival order.
func (idx *OrderedIndex) insert(r row.Row) (disk.RID, error) {
	rid, err := idx.heap.AppendRow(r)
	if err != nil {
		return disk.RID{}, err
	}
	key, err := idx.heap.GetRow(rid)
	if err != nil {
		return disk.RID{}, err
	}
	at := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entryLess(key, idx.entries[i].key)
	})
	idx.entries = append(idx.entries, indexEntry{})
	copy(idx.entries[at+1:], idx.entries[at:])
	idx.entries[at] = indexEntry{key: key, rid: rid}

	h := idx.orderingKeyHash(key)
	idx.keyHash[h] = append(idx.keyHash[h], rid)
	return rid, nil
}

// orderingKeyHash fingerprints the ordering-field suffix of a row.
func (idx *OrderedIndex) orderingKeyHash(r row.Row) uint64 {
	hasher := murmur3.New64()
	for pos := idx.fixedFields(); pos < idx.rowType.NFields(); pos++ {
		hasher.Write(r.Value(pos).Serialize())
	}
	return hasher.Sum64()
}

// lookupByRow finds the entry position of a row equal to r across all
// fields, probing the hash index first.
func (idx *OrderedIndex) lookupByRow(r row.Row) (int, bool) {
	candidates, ok := idx.keyHash[idx.orderingKeyHash(r)]
	if !ok {
		return 0, false
	}
	for _, rid := range candidates {
		for at, entry := range idx.entries {
			if entry.rid == rid && row.Compare(entry.key, r, 0, idx.rowType.NFields()) == 0 {
				return at, true
			}
		}
	}
	return 0, false
}

// replaceAt swaps the entry at position for a new row, re-sorting it into
// place and updating the hash index.
func (idx *OrderedIndex) replaceAt(at int, newRow row.Row) error {
	old := idx.entries[at]
	rid, err := idx.heap.AppendRow(newRow)
	if err != nil {
		return err
	}
	key, err := idx.heap.GetRow(rid)
	if err != nil {
		return err
	}

	idx.entries = append(idx.entries[:at], idx.entries[at+1:]...)
	insertAt := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entryLess(key, idx.entries[i].key)
	})
	idx.entries = append(idx.entries, indexEntry{})
	copy(idx.entries[insertAt+1:], idx.entries[insertAt:])
	idx.entries[insertAt] = indexEntry{key: key, rid: rid}

	oldHash := idx.orderingKeyHash(old.key)
	idx.keyHash[oldHash] = removeRID(idx.keyHash[oldHash], old.rid)
	if len(idx.keyHash[oldHash]) == 0 {
		delete(idx.keyHash, oldHash)
	}
	newHash := idx.orderingKeyHash(key)
	idx.keyHash[newHash] = append(idx.keyHash[newHash], rid)
	return nil
}

func removeRID(rids []disk.RID, rid disk.RID) []disk.RID {
	for i, candidate := range rids {
		if candidate == rid {
			return append(rids[:i], rids[i+1:]...)
		}
	}
	return rids
}

// seekPosition locates the first entry ordering-equal-to-or-after target
// over the selector-masked fields.
func (idx *OrderedIndex) seekPosition(target row.Row, selector row.ColumnSelector) int {
	common.Assert(target == nil || target.RowType() == idx.rowType,
		"seek target must share the index row type")
	if target == nil {
		return 0
	}
	return sort.Search(len(idx.entries), func(i int) bool {
		return idx.compareToTarget(idx.entries[i].key, target, selector) >= 0
	})
}

func (idx *OrderedIndex) rowAt(at int) (*row.ValuesRow, error) {
	return idx.heap.GetRow(idx.entries[at].rid)
}

func (idx *OrderedIndex) length() int { return len(idx.entries) }
