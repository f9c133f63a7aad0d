package repositories

// HeadRefRepository reads the ref currently checked out in a local working copy.
type HeadRefRepository interface {
	HeadRef(dir string) (string, error)
}
