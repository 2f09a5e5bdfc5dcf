// Package match builds a case-insensitive name index over spec and
// implementation entity collections and reconciles them into matched pairs
// and unmatched remainders. Matching is exact case-insensitive equality on
// trimmed names; similarity-based matching is a pluggable future extension,
// not default behavior.
package match

import "strings"

// Pair holds the indices of a matched spec entity and impl entity.
type Pair struct {
	Spec int
	Impl int
}

// Result partitions both input collections. For every input:
//
//	len(UnmatchedSpec) + len(Pairs) == len(specNames)
//	len(UnmatchedImpl) + len(Pairs) == len(implNames)
//
// All three slices preserve input order.
type Result struct {
	Pairs         []Pair
	UnmatchedSpec []int
	UnmatchedImpl []int
}

// Normalize produces the index key for an entity name: lower-cased and
// trimmed of surrounding whitespace.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Match reconciles spec entity names against impl entity names.
//
// When impl contains duplicate normalized names, the first occurrence in
// input order wins the match; later duplicates land in UnmatchedImpl. The
// spec side mirrors the rule: later spec duplicates land in UnmatchedSpec,
// keeping both partition equalities exact.
func Match(specNames, implNames []string) Result {
	implIdx := make(map[string]int, len(implNames))
	for j, name := range implNames {
		key := Normalize(name)
		if _, seen := implIdx[key]; !seen {
			implIdx[key] = j
		}
	}

	res := Result{}
	used := make(map[int]bool, len(implNames))
	specSeen := make(map[string]bool, len(specNames))
	for i, name := range specNames {
		key := Normalize(name)
		if specSeen[key] {
			res.UnmatchedSpec = append(res.UnmatchedSpec, i)
			continue
		}
		specSeen[key] = true
		j, ok := implIdx[key]
		if !ok {
			res.UnmatchedSpec = append(res.UnmatchedSpec, i)
			continue
		}
		res.Pairs = append(res.Pairs, Pair{Spec: i, Impl: j})
		used[j] = true
	}

	for j := range implNames {
		if !used[j] {
			res.UnmatchedImpl = append(res.UnmatchedImpl, j)
		}
	}
	return res
}
