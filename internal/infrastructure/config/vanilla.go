package config

// DefaultVanillaYAML holds the settings for every built-in enchantment,
// keyed by name within the host namespace.
const DefaultVanillaYAML = `# Built-in enchantments. Entries that fail to parse are skipped at startup.

protection:
  name: Protection
  min-level: 1
  max-level: 4
  enchantment-target: ARMOR
  curse: false
  conflicts: [fire_protection, blast_protection, projectile_protection]
  enchantable: []
fire_protection:
  name: Fire Protection
  min-level: 1
  max-level: 4
  enchantment-target: ARMOR
  curse: false
  conflicts: [protection, blast_protection, projectile_protection]
  enchantable: []
feather_falling:
  name: Feather Falling
  min-level: 1
  max-level: 4
  enchantment-target: ARMOR_FEET
  curse: false
  conflicts: []
  enchantable: []
blast_protection:
  name: Blast Protection
  min-level: 1
  max-level: 4
  enchantment-target: ARMOR
  curse: false
  conflicts: [protection, fire_protection, projectile_protection]
  enchantable: []
projectile_protection:
  name: Projectile Protection
  min-level: 1
  max-level: 4
  enchantment-target: ARMOR
  curse: false
  conflicts: [protection, fire_protection, blast_protection]
  enchantable: []
respiration:
  name: Respiration
  min-level: 1
  max-level: 3
  enchantment-target: ARMOR_HEAD
  curse: false
  conflicts: []
  enchantable: []
aqua_affinity:
  name: Aqua Affinity
  min-level: 1
  max-level: 1
  enchantment-target: ARMOR_HEAD
  curse: false
  conflicts: []
  enchantable: []
thorns:
  name: Thorns
  min-level: 1
  max-level: 3
  enchantment-target: ARMOR
  curse: false
  conflicts: []
  enchantable: []
depth_strider:
  name: Depth Strider
  min-level: 1
  max-level: 3
  enchantment-target: ARMOR_FEET
  curse: false
  conflicts: [frost_walker]
  enchantable: []
frost_walker:
  name: Frost Walker
  min-level: 1
  max-level: 2
  enchantment-target: ARMOR_FEET
  curse: false
  conflicts: [depth_strider]
  enchantable: []
binding_curse:
  name: Curse of Binding
  min-level: 1
  max-level: 1
  enchantment-target: WEARABLE
  curse: true
  conflicts: []
  enchantable: []
soul_speed:
  name: Soul Speed
  min-level: 1
  max-level: 3
  enchantment-target: ARMOR_FEET
  curse: false
  conflicts: []
  enchantable: []
swift_sneak:
  name: Swift Sneak
  min-level: 1
  max-level: 3
  enchantment-target: ARMOR_LEGS
  curse: false
  conflicts: []
  enchantable: []
sharpness:
  name: Sharpness
  min-level: 1
  max-level: 5
  enchantment-target: WEAPON
  curse: false
  conflicts: [smite, bane_of_arthropods]
  enchantable: [wooden_sword, stone_sword, iron_sword, golden_sword, diamond_sword, netherite_sword]
smite:
  name: Smite
  min-level: 1
  max-level: 5
  enchantment-target: WEAPON
  curse: false
  conflicts: [sharpness, bane_of_arthropods]
  enchantable: []
bane_of_arthropods:
  name: Bane of Arthropods
  min-level: 1
  max-level: 5
  enchantment-target: WEAPON
  curse: false
  conflicts: [sharpness, smite]
  enchantable: []
knockback:
  name: Knockback
  min-level: 1
  max-level: 2
  enchantment-target: WEAPON
  curse: false
  conflicts: []
  enchantable: []
fire_aspect:
  name: Fire Aspect
  min-level: 1
  max-level: 2
  enchantment-target: WEAPON
  curse: false
  conflicts: []
  enchantable: []
looting:
  name: Looting
  min-level: 1
  max-level: 3
  enchantment-target: WEAPON
  curse: false
  conflicts: []
  enchantable: []
sweeping:
  name: Sweeping Edge
  min-level: 1
  max-level: 3
  enchantment-target: WEAPON
  curse: false
  conflicts: []
  enchantable: []
efficiency:
  name: Efficiency
  min-level: 1
  max-level: 5
  enchantment-target: TOOL
  curse: false
  conflicts: []
  enchantable: []
silk_touch:
  name: Silk Touch
  min-level: 1
  max-level: 1
  enchantment-target: TOOL
  curse: false
  conflicts: [fortune]
  enchantable: []
unbreaking:
  name: Unbreaking
  min-level: 1
  max-level: 3
  enchantment-target: BREAKABLE
  curse: false
  conflicts: []
  enchantable: []
fortune:
  name: Fortune
  min-level: 1
  max-level: 3
  enchantment-target: TOOL
  curse: false
  conflicts: [silk_touch]
  enchantable: []
power:
  name: Power
  min-level: 1
  max-level: 5
  enchantment-target: BOW
  curse: false
  conflicts: []
  enchantable: []
punch:
  name: Punch
  min-level: 1
  max-level: 2
  enchantment-target: BOW
  curse: false
  conflicts: []
  enchantable: []
flame:
  name: Flame
  min-level: 1
  max-level: 1
  enchantment-target: BOW
  curse: false
  conflicts: []
  enchantable: []
infinity:
  name: Infinity
  min-level: 1
  max-level: 1
  enchantment-target: BOW
  curse: false
  conflicts: [mending]
  enchantable: []
luck_of_the_sea:
  name: Luck of the Sea
  min-level: 1
  max-level: 3
  enchantment-target: FISHING_ROD
  curse: false
  conflicts: []
  enchantable: []
lure:
  name: Lure
  min-level: 1
  max-level: 3
  enchantment-target: FISHING_ROD
  curse: false
  conflicts: []
  enchantable: []
loyalty:
  name: Loyalty
  min-level: 1
  max-level: 3
  enchantment-target: TRIDENT
  curse: false
  conflicts: [riptide]
  enchantable: []
impaling:
  name: Impaling
  min-level: 1
  max-level: 5
  enchantment-target: TRIDENT
  curse: false
  conflicts: []
  enchantable: []
riptide:
  name: Riptide
  min-level: 1
  max-level: 3
  enchantment-target: TRIDENT
  curse: false
  conflicts: [loyalty, channeling]
  enchantable: []
channeling:
  name: Channeling
  min-level: 1
  max-level: 1
  enchantment-target: TRIDENT
  curse: false
  conflicts: [riptide]
  enchantable: []
multishot:
  name: Multishot
  min-level: 1
  max-level: 1
  enchantment-target: CROSSBOW
  curse: false
  conflicts: [piercing]
  enchantable: []
quick_charge:
  name: Quick Charge
  min-level: 1
  max-level: 3
  enchantment-target: CROSSBOW
  curse: false
  conflicts: []
  enchantable: []
piercing:
  name: Piercing
  min-level: 1
  max-level: 4
  enchantment-target: CROSSBOW
  curse: false
  conflicts: [multishot]
  enchantable: []
mending:
  name: Mending
  min-level: 1
  max-level: 1
  enchantment-target: BREAKABLE
  curse: false
  conflicts: [infinity]
  enchantable: []
vanishing_curse:
  name: Curse of Vanishing
  min-level: 1
  max-level: 1
  enchantment-target: VANISHABLE
  curse: true
  conflicts: []
  enchantable: []
`
