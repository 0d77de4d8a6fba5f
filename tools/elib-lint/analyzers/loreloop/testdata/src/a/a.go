package a

type service struct{}

func (s *service) SetLevel(item any, key string, level int, updateLore bool) int { return 0 }
func (s *service) Remove(item any, key string, updateLore bool) int { return 0 }
func (s *service) UpdateDescription(item any) {}

func bad(s *service, item any, keys []string) {
	for _, k := range keys {
		s.SetLevel(item, k, 1, true) // want "SetLevel reconciles lore inside loop"
	}
	for i := 0; i < len(keys); i++ {
		s.Remove(item, keys[i], true) // want "Remove reconciles lore inside loop"
	}
}

func good(s *service, item any, keys []string) {
	for _, k := range keys {
		s.SetLevel(item, k, 1, false)
	}
	s.UpdateDescription(item)
}

func goodSingle(s *service, item any) {
	s.SetLevel(item, "sharpness", 5, true)
}
