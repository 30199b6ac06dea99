package board

// forest is a union-find over area ids. Index 0 is unused.
type forest []AreaID

func newForest(size int) forest {
	f := make(forest, size+1)
	for i := range f {
		f[i] = AreaID(i)
	}
	return f
}

// find returns the root of a, compressing the path it walked.
func (f forest) find(a AreaID) AreaID {
	root := a
	for f[root] != root {
		root = f[root]
	}
	for f[a] != root {
		next := f[a]
		f[a] = root
		a = next
	}
	return root
}

// union joins the areas of a and b, repointing a's root at b's root.
// It reports false when both already share a root.
func (f forest) union(a, b AreaID) bool {
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return false
	}
	f[ra] = rb
	return true
}
