package tasks

import "slices"

func sortedKeys(set map[string]bool) (ret []string) {
	for key := range set {
		ret = append(ret, key)
	}
	slices.Sort(ret)
	return
}
