package reconcile

// Index maps a join key to the first item carrying that key, in source order.
// Items are stored by value; the index never hands out references into the
// source slice.
type Index[K comparable, V any] struct {
	entries  map[K]V
	shadowed int
}

// BuildIndex indexes items by key. The key function reports ok=false for items
// that must not be indexed (an empty key). When several items share a key the
// first one wins and the rest are counted as shadowed.
func BuildIndex[K comparable, V any](items []V, key func(V) (K, bool)) *Index[K, V] {
	idx := &Index[K, V]{
		entries: make(map[K]V, len(items)),
	}
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		if _, exists := idx.entries[k]; exists {
			idx.shadowed++
			continue
		}
		idx.entries[k] = item
	}
	return idx
}

// Lookup returns the item indexed under k.
func (i *Index[K, V]) Lookup(k K) (V, bool) {
	v, ok := i.entries[k]
	return v, ok
}

// Len returns the number of distinct keys.
func (i *Index[K, V]) Len() int {
	return len(i.entries)
}

// Shadowed returns how many items were ignored because an earlier item had the same key.
func (i *Index[K, V]) Shadowed() int {
	return i.shadowed
}
