package service

import "strings"

// tunnelRestrictedClasses is the fixed list of hazard classes that require
// tunnel avoidance. This is a lookup, not a routing engine.
var tunnelRestrictedClasses = map[string]bool{
	"1.1": true, // mass explosion
	"1.2": true, // projection hazard
	"1.3": true, // fire hazard
	"2.1": true, // flammable gas
	"2.3": true, // toxic gas
	"3":   true, // flammable liquid
	"5.2": true, // organic peroxide
	"7":   true, // radioactive
}

// hazmatWarnings are static regulatory reminders appended per class.
var hazmatWarnings = map[string][]string{
	"1.1": {"Explosives: route must avoid tunnels and dense urban cores", "Placarding required at any quantity"},
	"1.2": {"Explosives: route must avoid tunnels and dense urban cores"},
	"1.3": {"Explosives: verify state-specific routing restrictions"},
	"2.1": {"Flammable gas: tunnel restrictions apply", "Check local bridge restrictions"},
	"2.3": {"Toxic gas: tunnel restrictions apply", "Emergency response guide must be in cab"},
	"3":   {"Flammable liquid: most urban tunnels prohibited"},
	"5.2": {"Organic peroxide: temperature control documentation required"},
	"7":   {"Radioactive: preferred-route (NRC-designated) requirements apply"},
	"8":   {"Corrosive: verify container securement before transit"},
	"9":   {"Miscellaneous: confirm shipping papers match placards"},
}

// HazmatRouteAdvice is the static routing guidance for a hazard class.
type HazmatRouteAdvice struct {
	HazardClass  string   `json:"hazard_class"`
	AvoidTunnels bool     `json:"avoid_tunnels"`
	Warnings     []string `json:"warnings"`
}

// HazmatRouter answers tunnel-avoidance questions from the fixed class
// table. The real restriction database is an external collaborator.
type HazmatRouter struct{}

func NewHazmatRouter() *HazmatRouter {
	return &HazmatRouter{}
}

// Advise returns the static routing advice for a hazard class.
func (h *HazmatRouter) Advise(hazardClass string) HazmatRouteAdvice {
	class := strings.TrimSpace(hazardClass)
	return HazmatRouteAdvice{
		HazardClass:  class,
		AvoidTunnels: tunnelRestrictedClasses[class],
		Warnings:     hazmatWarnings[class],
	}
}
