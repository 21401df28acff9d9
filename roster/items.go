package roster

import "slices"

// HeldItems is the catalog of items a creature can hold, using PokeAPI item names.
// Nothing checks whether a particular creature can make use of its item.
var HeldItems = [...]string{
	"ability-shield",
	"absorb-bulb",
	"air-balloon",
	"assault-vest",
	"big-root",
	"black-belt",
	"black-glasses",
	"black-sludge",
	"booster-energy",
	"bright-powder",
	"charcoal",
	"choice-band",
	"choice-scarf",
	"choice-specs",
	"clear-amulet",
	"covert-cloak",
	"damp-rock",
	"dragon-fang",
	"eject-button",
	"eject-pack",
	"electric-seed",
	"eviolite",
	"expert-belt",
	"flame-orb",
	"focus-sash",
	"grassy-seed",
	"heat-rock",
	"heavy-duty-boots",
	"icy-rock",
	"iron-ball",
	"king's-rock",
	"lagging-tail",
	"leftovers",
	"life-orb",
	"light-clay",
	"loaded-dice",
	"magnet",
	"mental-herb",
	"metronome",
	"miracle-seed",
	"mirror-herb",
	"misty-seed",
	"muscle-band",
	"mystic-water",
	"never-melt-ice",
	"poison-barb",
	"power-herb",
	"protective-pads",
	"psychic-seed",
	"punching-glove",
	"quick-claw",
	"razor-claw",
	"red-card",
	"rocky-helmet",
	"room-service",
	"safety-goggles",
	"scope-lens",
	"sharp-beak",
	"shell-bell",
	"silk-scarf",
	"silver-powder",
	"smooth-rock",
	"soft-sand",
	"spell-tag",
	"sticky-barb",
	"terrain-extender",
	"throat-spray",
	"toxic-orb",
	"twisted-spoon",
	"utility-umbrella",
	"weakness-policy",
	"white-herb",
	"wide-lens",
	"wise-glasses",
	"zoom-lens",
	"sitrus-berry",
	"lum-berry",
	"chesto-berry",
	"salac-berry",
	"liechi-berry",
}

func IsHeldItem(name string) bool {
	return slices.Contains(HeldItems[:], name)
}
