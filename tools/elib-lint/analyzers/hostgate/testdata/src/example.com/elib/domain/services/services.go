package services

import "example.com/elib/domain/ports"

func install(table ports.EnchantmentTable, key string) error {
	if err := table.OpenForInsertion(); err != nil {
		return err
	}
	defer table.CloseForInsertion()
	return table.Insert(key, key)
}
