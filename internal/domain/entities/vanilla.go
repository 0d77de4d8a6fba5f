package entities

// VanillaNames are the built-in enchantments the host ships under DefaultNamespace.
// The host table is seeded with these, and the vanilla loader looks each one up
// in the vanilla definitions source.
var VanillaNames = []string{
	"protection",
	"fire_protection",
	"feather_falling",
	"blast_protection",
	"projectile_protection",
	"respiration",
	"aqua_affinity",
	"thorns",
	"depth_strider",
	"frost_walker",
	"binding_curse",
	"soul_speed",
	"swift_sneak",
	"sharpness",
	"smite",
	"bane_of_arthropods",
	"knockback",
	"fire_aspect",
	"looting",
	"sweeping",
	"efficiency",
	"silk_touch",
	"unbreaking",
	"fortune",
	"power",
	"punch",
	"flame",
	"infinity",
	"luck_of_the_sea",
	"lure",
	"loyalty",
	"impaling",
	"riptide",
	"channeling",
	"multishot",
	"quick_charge",
	"piercing",
	"mending",
	"vanishing_curse",
}

// VanillaKeys returns the built-in keys in declaration order.
func VanillaKeys() []Key {
	keys := make([]Key, len(VanillaNames))
	for i, name := range VanillaNames {
		keys[i] = MustKey(DefaultNamespace, name)
	}
	return keys
}

// IsVanilla checks if a key names a built-in enchantment.
func IsVanilla(k Key) bool {
	if k.Namespace != DefaultNamespace {
		return false
	}
	for _, name := range VanillaNames {
		if name == k.Name {
			return true
		}
	}
	return false
}
