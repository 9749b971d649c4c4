package problemgen

// keySet returns the keys of tasks as a lookup set, merged with extra.
func keySet(extra []string, tasks ...*Task) map[string]struct{} {
	set := make(map[string]struct{}, len(extra)+len(tasks))
	for _, k := range extra {
		set[k] = struct{}{}
	}
	for _, t := range tasks {
		if t != nil {
			set[t.Key()] = struct{}{}
		}
	}
	return set
}

// recentZero reports whether any of the last n tasks had a zero operand.
func recentZero(recent []*Task, n int) bool {
	if n > 0 && len(recent) > n {
		recent = recent[len(recent)-n:]
	}
	for _, t := range recent {
		if t != nil && t.HasZeroOperand() {
			return true
		}
	}
	return false
}
