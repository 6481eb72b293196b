package octree

import (
	"sync"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/golang/geo/r3"
)

// VolumeIndex guarded by a single lock. Reads go through the same lock as writes.
type SyncVolumeIndex struct {
	index *VolumeIndex
	sync.Mutex
}

func NewSyncVolumeIndex(index *VolumeIndex) *SyncVolumeIndex {
	return &SyncVolumeIndex{index: index}
}

func (s *SyncVolumeIndex) Insert(point data.Point) bool {
	s.Lock()
	defer s.Unlock()
	return s.index.Insert(point)
}

func (s *SyncVolumeIndex) Contains(v r3.Vector) (data.Point, bool) {
	s.Lock()
	defer s.Unlock()
	return s.index.Contains(v)
}

func (s *SyncVolumeIndex) FindNearest(v r3.Vector, opts FindOptions) (data.Point, bool) {
	s.Lock()
	defer s.Unlock()
	return s.index.FindNearest(v, opts)
}

// Inserts the point only if no point with the same coordinates is stored, atomically.
// Returns true if the point was inserted.
func (s *SyncVolumeIndex) InsertIfAbsent(point data.Point) bool {
	s.Lock()
	defer s.Unlock()
	if _, ok := s.index.Contains(point.Vector()); ok {
		return false
	}
	return s.index.Insert(point)
}

func (s *SyncVolumeIndex) Size() int {
	s.Lock()
	defer s.Unlock()
	return s.index.Size()
}

// The root cell is returned without holding the lock, callers must not traverse it while writers run
func (s *SyncVolumeIndex) GetRootCell() ICell {
	return s.index.GetRootCell()
}

func (s *SyncVolumeIndex) Stats() IndexStats {
	s.Lock()
	defer s.Unlock()
	return s.index.Stats()
}
