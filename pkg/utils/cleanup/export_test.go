package cleanup

// SetRemoveTree replaces the removal function and returns a restore func.
func SetRemoveTree(f func(string) error) func() {
	orig := removeTree
	removeTree = f
	return func() { removeTree = orig }
}
