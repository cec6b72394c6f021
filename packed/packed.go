package packed

import (
	"container/heap"
	"iter"
	"math"
)

// Handle identifies a live slot in a PackedArray. Handles stay stable across
// unrelated insertions and removals and are recycled once released.
type Handle uint32

// NullHandle is never issued by a PackedArray.
const NullHandle Handle = math.MaxUint32

const freeSlot = -1

// PackedArray keeps its elements contiguous and addresses them through
// recyclable handles. Removal swaps the last element into the vacated slot.
//
// The zero value is an empty array ready for use.
type PackedArray[T any] struct {
	data          []T
	indexToHandle []Handle
	// handleToIndex covers every handle issued since the last Clear; released
	// handles hold freeSlot.
	handleToIndex []int
	free          freeHandles
}

// NewPackedArray returns an empty array with room for capacity elements.
func NewPackedArray[T any](capacity int) *PackedArray[T] {
	return &PackedArray[T]{
		data:          make([]T, 0, capacity),
		indexToHandle: make([]Handle, 0, capacity),
		handleToIndex: make([]int, 0, capacity),
	}
}

// Add appends v and returns its handle.
func (a *PackedArray[T]) Add(v T) Handle {
	handle := a.allocate(len(a.data))
	a.data = append(a.data, v)
	return handle
}

// Emplace appends a zero value and returns its handle along with a pointer for
// in-place initialisation. The pointer is valid until the next mutation.
func (a *PackedArray[T]) Emplace() (Handle, *T) {
	var zero T
	handle := a.Add(zero)
	return handle, &a.data[len(a.data)-1]
}

// EmplaceWithHandle builds the element from the handle it is about to be
// stored under and inserts it.
func (a *PackedArray[T]) EmplaceWithHandle(build func(Handle) T) Handle {
	handle := a.allocate(len(a.data))
	a.data = append(a.data, build(handle))
	return handle
}

// Remove swap-removes the element addressed by handle and releases the handle.
// It panics if the handle is not live.
func (a *PackedArray[T]) Remove(handle Handle) {
	index := a.mustIndex(handle)
	last := len(a.data) - 1
	lastHandle := a.indexToHandle[last]

	var zero T
	a.data[index] = a.data[last]
	a.data[last] = zero
	a.data = a.data[:last]

	a.indexToHandle[index] = lastHandle
	a.indexToHandle = a.indexToHandle[:last]

	// Order matters when the removed element is the last one.
	a.handleToIndex[lastHandle] = index
	a.handleToIndex[handle] = freeSlot
	heap.Push(&a.free, handle)
}

// RemoveChecked reports false without side effects if handle is not live.
func (a *PackedArray[T]) RemoveChecked(handle Handle) bool {
	if !a.IsValidHandle(handle) {
		return false
	}
	a.Remove(handle)
	return true
}

// RemoveByIndex removes the element currently stored at index.
func (a *PackedArray[T]) RemoveByIndex(index int) {
	a.Remove(a.HandleFromIndex(index))
}

// RemoveByIndexChecked reports false without side effects if index is out of
// range.
func (a *PackedArray[T]) RemoveByIndexChecked(index int) bool {
	if !a.IsValidIndex(index) {
		return false
	}
	a.RemoveByIndex(index)
	return true
}

// Get returns a pointer into the dense storage. It panics if the handle is not
// live.
func (a *PackedArray[T]) Get(handle Handle) *T {
	return &a.data[a.mustIndex(handle)]
}

// GetChecked returns the element addressed by handle, or false if the handle
// is not live.
func (a *PackedArray[T]) GetChecked(handle Handle) (*T, bool) {
	if !a.IsValidHandle(handle) {
		return nil, false
	}
	return &a.data[a.handleToIndex[handle]], true
}

// GetByIndex returns the element at dense position index. It panics if index
// is out of range.
func (a *PackedArray[T]) GetByIndex(index int) *T {
	if !a.IsValidIndex(index) {
		panic(InvalidIndexError{Index: index, Size: len(a.data)})
	}
	return &a.data[index]
}

// GetByIndexChecked returns the element at index, or false if index is out of
// range.
func (a *PackedArray[T]) GetByIndexChecked(index int) (*T, bool) {
	if !a.IsValidIndex(index) {
		return nil, false
	}
	return &a.data[index], true
}

// HandleFromIndex returns the handle of the element at index. It panics if
// index is out of range.
func (a *PackedArray[T]) HandleFromIndex(index int) Handle {
	if !a.IsValidIndex(index) {
		panic(InvalidIndexError{Index: index, Size: len(a.data)})
	}
	return a.indexToHandle[index]
}

// HandleFromIndexChecked returns NullHandle and false if index is out of range.
func (a *PackedArray[T]) HandleFromIndexChecked(index int) (Handle, bool) {
	if !a.IsValidIndex(index) {
		return NullHandle, false
	}
	return a.indexToHandle[index], true
}

// Size returns the number of live elements.
func (a *PackedArray[T]) Size() int {
	return len(a.data)
}

// IsValidHandle reports whether handle addresses a live element.
func (a *PackedArray[T]) IsValidHandle(handle Handle) bool {
	return int64(handle) < int64(len(a.handleToIndex)) && a.handleToIndex[handle] != freeSlot
}

// IsValidIndex reports whether index is within the dense storage.
func (a *PackedArray[T]) IsValidIndex(index int) bool {
	return index >= 0 && index < len(a.data)
}

// Clear drops every element and forgets every issued handle.
func (a *PackedArray[T]) Clear() {
	clear(a.data)
	a.data = a.data[:0]
	a.indexToHandle = a.indexToHandle[:0]
	a.handleToIndex = a.handleToIndex[:0]
	a.free = a.free[:0]
}

// NextHandle returns the handle the next insertion will be assigned.
func (a *PackedArray[T]) NextHandle() Handle {
	if len(a.free) > 0 {
		return a.free[0]
	}
	return Handle(len(a.handleToIndex))
}

// All yields every live element with its handle in dense order. The order is
// not meaningful and changes with removals.
func (a *PackedArray[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := 0; i < len(a.data); i++ {
			if !yield(a.indexToHandle[i], &a.data[i]) {
				return
			}
		}
	}
}

// Values yields every live element in dense order.
func (a *PackedArray[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < len(a.data); i++ {
			if !yield(&a.data[i]) {
				return
			}
		}
	}
}

func (a *PackedArray[T]) allocate(index int) Handle {
	var handle Handle
	if len(a.free) > 0 {
		handle = heap.Pop(&a.free).(Handle)
		a.handleToIndex[handle] = index
	} else {
		handle = Handle(len(a.handleToIndex))
		if handle == NullHandle {
			panic(ExhaustedError{})
		}
		a.handleToIndex = append(a.handleToIndex, index)
	}
	a.indexToHandle = append(a.indexToHandle, handle)
	return handle
}

func (a *PackedArray[T]) mustIndex(handle Handle) int {
	if !a.IsValidHandle(handle) {
		panic(InvalidHandleError{Handle: handle})
	}
	return a.handleToIndex[handle]
}

// freeHandles is a min-heap so the smallest released handle is reissued first.
type freeHandles []Handle

func (f freeHandles) Len() int           { return len(f) }
func (f freeHandles) Less(i, j int) bool { return f[i] < f[j] }
func (f freeHandles) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *freeHandles) Push(x any) {
	*f = append(*f, x.(Handle))
}

func (f *freeHandles) Pop() any {
	old := *f
	n := len(old)
	h := old[n-1]
	*f = old[:n-1]
	return h
}
