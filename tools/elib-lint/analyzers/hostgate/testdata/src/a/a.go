package a

import "example.com/elib/domain/ports"

type cache struct{}

func (c *cache) Insert(key, name string) error { return nil }

func bad(table ports.EnchantmentTable) {
	_ = table.OpenForInsertion()   // want "OpenForInsertion called on the host table directly"
	_ = table.Insert("a:b", "b")   // want "Insert called on the host table directly"
	table.CloseForInsertion()      // want "CloseForInsertion called on the host table directly"
	_ = table.RemoveIndexes("a:b") // want "RemoveIndexes called on the host table directly"
}

func good(table ports.EnchantmentTable, c *cache) bool {
	_ = c.Insert("a:b", "b")
	return table.Contains("a:b")
}
