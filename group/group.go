package group

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// By groups items by key. Every item ends up in exactly one group, and the
// members of each group keep their relative input order. Groups are created
// when their key is first encountered. The result is never nil.
func By[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	tracer().Debugf("grouped %d items into %d groups", len(items), len(groups))
	return groups
}

// SortedKeys returns the keys of a grouping in the order defined by a gods
// comparator, e.g. utils.IntComparator for int keys.
func SortedKeys[K comparable, T any](groups map[K][]T, cmp utils.Comparator) []K {
	set := treeset.NewWith(cmp)
	for k := range groups {
		set.Add(k)
	}
	keys := make([]K, 0, set.Size())
	for _, k := range set.Values() {
		keys = append(keys, k.(K))
	}
	return keys
}

// --- Ordered groups --------------------------------------------------------

// Ordered is a grouping which keeps the keys in order of first encounter.
type Ordered[K comparable, T any] struct {
	m *linkedhashmap.Map // K -> []T
}

// ByOrdered groups items by key, like By, but remembers the key order.
func ByOrdered[T any, K comparable](items []T, key func(T) K) *Ordered[K, T] {
	g := &Ordered[K, T]{m: linkedhashmap.New()}
	for _, item := range items {
		k := key(item)
		members, _ := g.m.Get(k)
		if members == nil {
			g.m.Put(k, []T{item})
			continue
		}
		g.m.Put(k, append(members.([]T), item))
	}
	tracer().Debugf("grouped %d items into %d ordered groups", len(items), g.m.Size())
	return g
}

// Len returns the number of groups.
func (g *Ordered[K, T]) Len() int {
	return g.m.Size()
}

// Keys returns the keys in order of first encounter.
func (g *Ordered[K, T]) Keys() []K {
	keys := make([]K, 0, g.m.Size())
	for _, k := range g.m.Keys() {
		keys = append(keys, k.(K))
	}
	return keys
}

// Get returns the members of a group, or nil if there is no group for k.
func (g *Ordered[K, T]) Get(k K) []T {
	members, found := g.m.Get(k)
	if !found {
		return nil
	}
	return members.([]T)
}

// Each calls f for every group, in key order.
func (g *Ordered[K, T]) Each(f func(K, []T)) {
	it := g.m.Iterator()
	for it.Next() {
		f(it.Key().(K), it.Value().([]T))
	}
}

// Map converts the grouping to a plain map, losing the key order.
func (g *Ordered[K, T]) Map() map[K][]T {
	m := make(map[K][]T, g.m.Size())
	g.Each(func(k K, members []T) {
		m[k] = members
	})
	return m
}

// String prints groups as {k1=[a, b], k2=[c]}.
func (g *Ordered[K, T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	g.Each(func(k K, members []T) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v=[", k)
		for i, m := range members {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m)
		}
		b.WriteByte(']')
	})
	b.WriteByte('}')
	return b.String()
}

// --- Checking groupings ----------------------------------------------------

// IsPartition checks if groups is a grouping of items: every item is member
// of exactly as many groups as it occurs in items, and inside each group,
// members appear in the same relative order as in items. Items are
// identified by a fingerprint, e.g. Person.Fingerprint.
func IsPartition[K comparable, T any](groups map[K][]T, items []T, fingerprint func(T) string) bool {
	position := make(map[string][]int) // fingerprint -> positions in items
	for i, item := range items {
		fp := fingerprint(item)
		position[fp] = append(position[fp], i)
	}
	used := make(map[string]int) // fingerprint -> occurrences consumed
	total := 0
	for k, members := range groups {
		last := -1
		for _, m := range members {
			fp := fingerprint(m)
			n := used[fp]
			if n >= len(position[fp]) {
				tracer().Infof("group %v: member %v not in input, or duplicated", k, m)
				return false
			}
			used[fp] = n + 1
			if position[fp][n] < last {
				tracer().Infof("group %v: member %v out of order", k, m)
				return false
			}
			last = position[fp][n]
			total++
		}
	}
	return total == len(items)
}
