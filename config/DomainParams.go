package config

import (
	"github.com/dfki-ni/rageplan/domain/assembly"
	"github.com/dfki-ni/rageplan/domain/hotel"
)

// overlayFloat applies v onto dst only when v is non-zero, so an omitted
// paramfile key keeps the domain's DefaultConfig value.
func overlayFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

// ApplyAssemblyParams overlays a ParamFile's problem-level keys onto an
// assembly.Config (spec §6 "problem (assembly/hotel)").
func ApplyAssemblyParams(cfg assembly.Config, p ParamFile) assembly.Config {
	overlayFloat(&cfg.PerceiveAcc, p.Perceive)
	overlayFloat(&cfg.Activation, p.Activation)
	overlayFloat(&cfg.PGSAlpha, p.PGSAlpha)
	overlayFloat(&cfg.Discount, p.Discount)
	overlayFloat(&cfg.FDiscount, p.FDiscount)
	overlayFloat(&cfg.TransitionRate, p.TransitionRate)
	overlayFloat(&cfg.Expertise, p.Expertise)
	overlayFloat(&cfg.BinEntropyLimit, p.Entropy)
	return cfg
}

// ApplyHotelParams overlays a ParamFile's problem-level keys onto a
// hotel.Config, additionally honouring bringSuccess (spec §6
// "bringSuccess (hotel only)").
func ApplyHotelParams(cfg hotel.Config, p ParamFile) hotel.Config {
	overlayFloat(&cfg.PerceiveAcc, p.Perceive)
	overlayFloat(&cfg.BringSuccess, p.BringSuccess)
	overlayFloat(&cfg.Activation, p.Activation)
	overlayFloat(&cfg.PGSAlpha, p.PGSAlpha)
	overlayFloat(&cfg.Discount, p.Discount)
	overlayFloat(&cfg.FDiscount, p.FDiscount)
	overlayFloat(&cfg.TransitionRate, p.TransitionRate)
	overlayFloat(&cfg.Expertise, p.Expertise)
	overlayFloat(&cfg.BinEntropyLimit, p.Entropy)
	return cfg
}
