package entities

import (
	"fmt"
	"strings"
)

// Target is the coarse category of items an enchantment is intended for.
// It is advisory only and never checked against a Definition's enchantable set.
type Target string

// Known targets, named after the host's own item categories.
const (
	TargetAll        Target = "ALL"
	TargetArmor      Target = "ARMOR"
	TargetArmorFeet  Target = "ARMOR_FEET"
	TargetArmorLegs  Target = "ARMOR_LEGS"
	TargetArmorTorso Target = "ARMOR_TORSO"
	TargetArmorHead  Target = "ARMOR_HEAD"
	TargetWeapon     Target = "WEAPON"
	TargetTool       Target = "TOOL"
	TargetBow        Target = "BOW"
	TargetFishingRod Target = "FISHING_ROD"
	TargetBreakable  Target = "BREAKABLE"
	TargetWearable   Target = "WEARABLE"
	TargetTrident    Target = "TRIDENT"
	TargetCrossbow   Target = "CROSSBOW"
	TargetVanishable Target = "VANISHABLE"
)

var knownTargets = map[Target]bool{
	TargetAll:        true,
	TargetArmor:      true,
	TargetArmorFeet:  true,
	TargetArmorLegs:  true,
	TargetArmorTorso: true,
	TargetArmorHead:  true,
	TargetWeapon:     true,
	TargetTool:       true,
	TargetBow:        true,
	TargetFishingRod: true,
	TargetBreakable:  true,
	TargetWearable:   true,
	TargetTrident:    true,
	TargetCrossbow:   true,
	TargetVanishable: true,
}

// IsValid reports whether t is one of the known targets.
func (t Target) IsValid() bool {
	return knownTargets[t]
}

// ParseTarget parses a target name case-insensitively.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown enchantment target %q", s)
	}
	return t, nil
}
