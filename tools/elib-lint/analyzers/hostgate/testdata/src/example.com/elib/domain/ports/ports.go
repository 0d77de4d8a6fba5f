package ports

type EnchantmentTable interface {
	Contains(key string) bool
	OpenForInsertion() error
	Insert(key, name string) error
	CloseForInsertion()
	RemoveIndexes(key string) error
}
