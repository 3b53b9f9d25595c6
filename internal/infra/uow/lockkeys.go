package uow

import "sort"

// NormalizeLockKeys prepares a lock-key set for acquisition: empty keys
// are dropped, duplicates collapse, and the rest sort lexicographically.
// Every writer acquiring its keys in this order is what makes deadlock
// between the engine's own transactions impossible.
func NormalizeLockKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
