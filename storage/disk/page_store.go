package disk

import (
	"errors"
	"sync"

	"github.com/dsnet/golib/memfile"

	"github.com/JanyW/sql-layer/common"
)

// PageStore is the physical page surface the row heap sits on.
type PageStore interface {
	ReadPage(common.PageID, []byte) error
	WritePage(common.PageID, []byte) error
	AllocatePage() common.PageID
	Size() int64
	ShutDown()
}

var ErrPageOutOfRange = errors.New("page id past end of store")

// MemoryPageStore keeps pages in a memory-backed file. It stands in for a
// real disk manager so the execution layer is runnable without any physical
// storage underneath.
type MemoryPageStore struct {
	db         *memfile.File
	nextPageID common.PageID
	size       int64
	fileMutex  *sync.Mutex
}

func NewMemoryPageStore() *MemoryPageStore {
	return &MemoryPageStore{
		db:        memfile.New(make([]byte, 0)),
		fileMutex: new(sync.Mutex),
	}
}

func (s *MemoryPageStore) WritePage(pageID common.PageID, pageData []byte) error {
	s.fileMutex.Lock()
	defer s.fileMutex.Unlock()

	if pageID < 0 || pageID >= s.nextPageID {
		return ErrPageOutOfRange
	}
	offset := int64(pageID) * int64(common.PageSize)
	s.db.WriteAt(pageData, offset)
	if end := offset + int64(len(pageData)); end > s.size {
		s.size = end
	}
	return nil
}

func (s *MemoryPageStore) ReadPage(pageID common.PageID, pageData []byte) error {
	s.fileMutex.Lock()
	defer s.fileMutex.Unlock()

	if pageID < 0 || pageID >= s.nextPageID {
		return ErrPageOutOfRange
	}
	offset := int64(pageID) * int64(common.PageSize)
	_, err := s.db.ReadAt(pageData, offset)
	return err
}

func (s *MemoryPageStore) AllocatePage() common.PageID {
	s.fileMutex.Lock()
	defer s.fileMutex.Unlock()

	pageID := s.nextPageID
	s.nextPageID++
	s.db.WriteAt(make([]byte, common.PageSize), int64(pageID)*int64(common.PageSize))
	return pageID
}

func (s *MemoryPageStore) Size() int64 {
	s.fileMutex.Lock()
	defer s.fileMutex.Unlock()
	return s.size
}

func (s *MemoryPageStore) ShutDown() {
	// nothing to flush
}
