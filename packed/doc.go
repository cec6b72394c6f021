/*
Package packed provides handle-addressed dense storage.

A PackedArray keeps its elements in one contiguous slice so iteration walks
memory linearly, while callers hold on to Handles that survive unrelated
insertions and removals. Removal is O(1): the last element is moved into the
vacated slot and the handle maps are patched for the moved element. Released
handles are reissued smallest first.

ObjectStore wraps a PackedArray of one concrete type and also satisfies
AnyObjectStore, so stores of different element types can be held and erased
from through a single interface.
*/
package packed
