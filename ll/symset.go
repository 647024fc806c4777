package ll

import (
	"bytes"

	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SymbolSet is an ordered set of grammar symbols. It is used for FIRST and FOLLOW
// sets. Sets are built by this package and handed out read-only.
type SymbolSet struct {
	set *treeset.Set
}

func newSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Contains checks for set membership of A.
func (S *SymbolSet) Contains(A Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(A)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is true for a set without members.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the symbols of S in order (non-terminals, terminals, ε, #eof,
// each group sorted by name).
func (S *SymbolSet) Values() []Symbol {
	if S == nil {
		return nil
	}
	syms := make([]Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}

// Each calls f for every symbol of S, in order.
func (S *SymbolSet) Each(f func(A Symbol)) {
	for _, A := range S.Values() {
		f(A)
	}
}

// Equals is true if S and other contain the same symbols.
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	return slices.Equal(S.Values(), other.Values())
}

// IsSupersetOf is true if every symbol of other is contained in S.
func (S *SymbolSet) IsSupersetOf(other *SymbolSet) bool {
	for _, A := range other.Values() {
		if !S.Contains(A) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, A := range S.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(A.String())
	}
	b.WriteString(" }")
	return b.String()
}

// --- Destructive operations, package internal ------------------------------

func (S *SymbolSet) add(A Symbol) bool {
	if S.set.Contains(A) {
		return false
	}
	S.set.Add(A)
	return true
}

func (S *SymbolSet) remove(A Symbol) {
	S.set.Remove(A)
}

// union adds all symbols of other to S, except the ones in except. It returns
// true if S has grown.
func (S *SymbolSet) union(other *SymbolSet, except ...Symbol) bool {
	grown := false
	for _, A := range other.Values() {
		if slices.Contains(except, A) {
			continue
		}
		if S.add(A) {
			grown = true
		}
	}
	return grown
}

func (S *SymbolSet) copy() *SymbolSet {
	return newSymbolSet(S.Values()...)
}

// --- Maps of sets -----------------------------------------------------------

// SymbolSets maps non-terminal names to sets of symbols. FIRST and FOLLOW of a
// grammar are represented this way.
type SymbolSets map[string]*SymbolSet

// Names returns the non-terminal names of a map of sets, sorted.
func (sets SymbolSets) Names() []string {
	names := maps.Keys(sets)
	slices.Sort(names)
	return names
}

// Of returns the set for non-terminal A, or an empty set if A is not mapped.
func (sets SymbolSets) Of(A string) *SymbolSet {
	if S, ok := sets[A]; ok {
		return S
	}
	return newSymbolSet()
}

func (sets SymbolSets) totalSize() int {
	n := 0
	for _, S := range sets {
		n += S.Size()
	}
	return n
}

// snapshot copies every set of a map. It is used to hand out intermediate
// states of fixed-point iterations to observers.
func (sets SymbolSets) snapshot() SymbolSets {
	c := make(SymbolSets, len(sets))
	for A, S := range sets {
		c[A] = S.copy()
	}
	return c
}
