package common

const (
	// size of a data page in byte
	PageSize = 4096
	// invalid page id
	InvalidPageID = -1
	// invalid slot number within a page
	InvalidSlotNum = -1
)

// SlotNum identifies a row slot within a page.
type SlotNum int32

// PageID identifies a page inside the memory-backed page store.
type PageID int32

func (id PageID) IsValid() bool {
	return id != InvalidPageID
}
