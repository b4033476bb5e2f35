package tree

import (
	"encoding/json"
	"sync/atomic"

	"github.com/benz9527/xtree/lib/infra"
)

// JSON form of a set is the plain sorted key array, the JSON form of a
// map is the sorted entry array. Unmarshal replaces the previous
// content; a sorted document rebuilds through the O(n) bulk path,
// anything else falls back to ordinary inserts.

func (set *aaTreeSet[K]) MarshalJSON() ([]byte, error) {
	keys := make([]K, 0, set.Len())
	set.Foreach(func(idx int64, key K) bool {
		keys = append(keys, key)
		return true
	})
	return json.Marshal(keys)
}

func (set *aaTreeSet[K]) UnmarshalJSON(data []byte) error {
	var keys []K
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	set.tree.root = nil
	atomic.StoreInt64(&set.count, 0)
	if isStrictAsc(keys, func(i, j K) int64 { return set.tree.cmp(i, j) }) {
		set.tree.root = fromSortedSlice(keys)
		atomic.StoreInt64(&set.count, int64(len(keys)))
		return nil
	}
	for _, key := range keys {
		set.Insert(key)
	}
	return nil
}

type jsonEntry[K infra.OrderedKey, V any] struct {
	Key K `json:"key"`
	Val V `json:"value"`
}

func (m *aaTreeMap[K, V]) MarshalJSON() ([]byte, error) {
	entries := make([]jsonEntry[K, V], 0, m.Len())
	m.Foreach(func(idx int64, key K, val V) bool {
		entries = append(entries, jsonEntry[K, V]{Key: key, Val: val})
		return true
	})
	return json.Marshal(entries)
}

func (m *aaTreeMap[K, V]) UnmarshalJSON(data []byte) error {
	var entries []jsonEntry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	m.tree.root = nil
	atomic.StoreInt64(&m.count, 0)
	if isStrictAsc(entries, func(i, j jsonEntry[K, V]) int64 { return m.keyCmp(i.Key, j.Key) }) {
		idx := 0
		m.tree.root = fromSortedIter(func() xEntry[K, V] {
			entry := entries[idx]
			idx++
			return xEntry[K, V]{key: entry.Key, val: entry.Val}
		}, len(entries))
		atomic.StoreInt64(&m.count, int64(len(entries)))
		return nil
	}
	for _, entry := range entries {
		m.Put(entry.Key, entry.Val)
	}
	return nil
}

func isStrictAsc[T any](elems []T, cmp func(i, j T) int64) bool {
	for i := 1; i < len(elems); i++ {
		if cmp(elems[i-1], elems[i]) >= 0 {
			return false
		}
	}
	return true
}
