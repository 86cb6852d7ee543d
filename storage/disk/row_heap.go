package disk

import (
	"errors"
	"fmt"

	"github.com/JanyW/sql-layer/common"
	"github.com/JanyW/sql-layer/storage/row"
	"github.com/JanyW/sql-layer/types"
)

// RID locates a row inside the page store.
type RID struct {
	PageID  common.PageID
	SlotNum common.SlotNum
}

func (r RID) String() string {
	return fmt.Sprintf("%d:%d", r.PageID, r.SlotNum)
}

var ErrRowTooLarge = errors.New("encoded row exceeds page size")

type slot struct {
	offset uint32
	length uint32
}

type heapPage struct {
	pageID common.PageID
	used   uint32
	slots  []slot
}

// RowHeap appends encoded rows of a single RowType to the page store and
// materializes them back on demand. The slot directory is kept in memory;
// pages carry only row bytes.
type RowHeap struct {
	store   PageStore
	rowType *row.RowType
	pages   []*heapPage
}

func NewRowHeap(store PageStore, rowType *row.RowType) *RowHeap {
	return &RowHeap{store: store, rowType: rowType}
}

func (h *RowHeap) RowType() *row.RowType { return h.rowType }

// AppendRow encodes the row and writes it to the last page with room,
// allocating a fresh page when needed.
func (h *RowHeap) AppendRow(r row.Row) (RID, error) {
	encoded := encodeRow(r)
	if len(encoded) > common.PageSize {
		return RID{}, ErrRowTooLarge
	}

	page := h.lastPageWithRoom(uint32(len(encoded)))
	pageData := make([]byte, common.PageSize)
	if err := h.store.ReadPage(page.pageID, pageData); err != nil {
		return RID{}, err
	}
	copy(pageData[page.used:], encoded)
	if err := h.store.WritePage(page.pageID, pageData); err != nil {
		return RID{}, err
	}

	page.slots = append(page.slots, slot{offset: page.used, length: uint32(len(encoded))})
	page.used += uint32(len(encoded))
	return RID{PageID: page.pageID, SlotNum: common.SlotNum(len(page.slots) - 1)}, nil
}

// GetRow reads the row at rid back out of the page store.
func (h *RowHeap) GetRow(rid RID) (*row.ValuesRow, error) {
	page := h.findPage(rid.PageID)
	if page == nil || int(rid.SlotNum) >= len(page.slots) {
		return nil, fmt.Errorf("no row at %s", rid)
	}
	pageData := make([]byte, common.PageSize)
	if err := h.store.ReadPage(page.pageID, pageData); err != nil {
		return nil, err
	}
	s := page.slots[rid.SlotNum]
	return decodeRow(h.rowType, pageData[s.offset:s.offset+s.length]), nil
}

func (h *RowHeap) lastPageWithRoom(need uint32) *heapPage {
	if n := len(h.pages); n > 0 && h.pages[n-1].used+need <= common.PageSize {
		return h.pages[n-1]
	}
	page := &heapPage{pageID: h.store.AllocatePage()}
	h.pages = append(h.pages, page)
	return page
}

func (h *RowHeap) findPage(pageID common.PageID) *heapPage {
	for _, p := range h.pages {
		if p.pageID == pageID {
			return p
		}
	}
	return nil
}

func encodeRow(r row.Row) []byte {
	encoded := make([]byte, 0, 64)
	for i := 0; i < r.RowType().NFields(); i++ {
		encoded = append(encoded, r.Value(i).Serialize()...)
	}
	return encoded
}

func decodeRow(rowType *row.RowType, data []byte) *row.ValuesRow {
	decoded := row.NewValuesRow(rowType)
	offset := uint32(0)
	for i := 0; i < rowType.NFields(); i++ {
		v, n := types.NewValueFromBytes(data[offset:], rowType.FieldType(i))
		decoded.SetValue(i, v)
		offset += n
	}
	return decoded
}
