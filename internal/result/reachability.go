package result

// IsDead reports whether some required field of tree has no live candidate branch.
// Entries are ANDed, branches inside one entry are ORed. A nil tree is dead.
func IsDead(tree *Tree) bool {
	if tree == nil {
		return true
	}
	for _, entry := range tree.Entries {
		if entry.IsDead() {
			return true
		}
	}
	return false
}

// IsReachable is the negation of IsDead.
func IsReachable(tree *Tree) bool {
	return !IsDead(tree)
}

// IsDead reports whether every candidate branch of entry failed.
// An entry without any candidate is dead unless it was satisfied as a leaf.
func (entry *Entry) IsDead() bool {
	if entry.Leaf {
		return false
	}

	dead := 0
	for _, branch := range entry.Branches {
		if IsDead(branch.Tree) {
			dead++
		}
	}

	return dead == len(entry.Branches)
}
