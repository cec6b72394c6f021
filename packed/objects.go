package packed

import "iter"

// AnyObjectStore is the type-erased view of an ObjectStore. It lets owners of
// stores with different element types erase by handle without knowing T.
type AnyObjectStore interface {
	RemoveObject(Handle)
	RemoveObjectChecked(Handle) bool
	IsValidHandle(Handle) bool
	Size() int
	Clear()
}

var _ AnyObjectStore = &ObjectStore[any]{}

// ObjectStore exclusively owns objects of a single type.
type ObjectStore[T any] struct {
	objects PackedArray[T]
}

func NewObjectStore[T any](capacity int) *ObjectStore[T] {
	return &ObjectStore[T]{objects: *NewPackedArray[T](capacity)}
}

// CreateObject constructs a zero T in place, hands it to init and returns its
// handle. init may be nil.
func (s *ObjectStore[T]) CreateObject(init func(*T)) Handle {
	handle, obj := s.objects.Emplace()
	if init != nil {
		init(obj)
	}
	return handle
}

// CreateObjectWithHandle builds the object from the handle it will be stored
// under.
func (s *ObjectStore[T]) CreateObjectWithHandle(build func(Handle) T) Handle {
	return s.objects.EmplaceWithHandle(build)
}

func (s *ObjectStore[T]) AddObject(obj T) Handle {
	return s.objects.Add(obj)
}

func (s *ObjectStore[T]) RemoveObject(handle Handle) {
	s.objects.Remove(handle)
}

func (s *ObjectStore[T]) RemoveObjectChecked(handle Handle) bool {
	return s.objects.RemoveChecked(handle)
}

func (s *ObjectStore[T]) RemoveObjectByIndex(index int) {
	s.objects.RemoveByIndex(index)
}

func (s *ObjectStore[T]) RemoveObjectByIndexChecked(index int) bool {
	return s.objects.RemoveByIndexChecked(index)
}

func (s *ObjectStore[T]) GetObject(handle Handle) *T {
	return s.objects.Get(handle)
}

func (s *ObjectStore[T]) GetObjectChecked(handle Handle) (*T, bool) {
	return s.objects.GetChecked(handle)
}

func (s *ObjectStore[T]) GetObjectByIndex(index int) *T {
	return s.objects.GetByIndex(index)
}

func (s *ObjectStore[T]) GetObjectByIndexChecked(index int) (*T, bool) {
	return s.objects.GetByIndexChecked(index)
}

func (s *ObjectStore[T]) HandleFromIndex(index int) Handle {
	return s.objects.HandleFromIndex(index)
}

func (s *ObjectStore[T]) HandleFromIndexChecked(index int) (Handle, bool) {
	return s.objects.HandleFromIndexChecked(index)
}

func (s *ObjectStore[T]) IsValidHandle(handle Handle) bool {
	return s.objects.IsValidHandle(handle)
}

func (s *ObjectStore[T]) Size() int {
	return s.objects.Size()
}

func (s *ObjectStore[T]) NextHandle() Handle {
	return s.objects.NextHandle()
}

func (s *ObjectStore[T]) Clear() {
	s.objects.Clear()
}

func (s *ObjectStore[T]) All() iter.Seq2[Handle, *T] {
	return s.objects.All()
}

func (s *ObjectStore[T]) Values() iter.Seq[*T] {
	return s.objects.Values()
}
