// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     machining
// Description: Cutting speed, milling feed, cycle time and surface finish
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package machining

import (
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "machining"

const (
	idCuttingSpeed     = Domain + ".cutting_speed"
	idMillingFeed      = Domain + ".milling_feed"
	idMachiningTime    = Domain + ".machining_time"
	idSurfaceRoughness = Domain + ".surface_roughness"
)

// ============================================================================
// Cutting speed
// ============================================================================

// CuttingSpeedInput selects the quantity to solve for. It is one of SolveRPM
// or SolveSpeed.
type CuttingSpeedInput interface{ cuttingSpeedInput() }

// SolveRPM solves n = 1000 * vc / (pi * d)
type SolveRPM struct {
	DiameterMm          float64 `json:"diameterMm" yaml:"diameterMm"`
	CuttingSpeedMPerMin float64 `json:"cuttingSpeedMPerMin" yaml:"cuttingSpeedMPerMin"`
}

// SolveSpeed solves vc = pi * d * n / 1000
type SolveSpeed struct {
	DiameterMm float64 `json:"diameterMm" yaml:"diameterMm"`
	SpindleRpm float64 `json:"spindleRpm" yaml:"spindleRpm"`
}

func (SolveRPM) cuttingSpeedInput()   {}
func (SolveSpeed) cuttingSpeedInput() {}

// CuttingSpeedResult holds tool diameter, spindle speed and surface speed
type CuttingSpeedResult struct {
	DiameterMm          float64 `json:"diameterMm" yaml:"diameterMm"`
	SpindleRpm          float64 `json:"spindleRpm" yaml:"spindleRpm"`
	CuttingSpeedMPerMin float64 `json:"cuttingSpeedMPerMin" yaml:"cuttingSpeedMPerMin"`
}

// CuttingSpeed converts between spindle speed and surface speed for a tool
// or workpiece diameter.
func CuttingSpeed(in CuttingSpeedInput) (CuttingSpeedResult, error) {
	var d, n, vc float64

	switch x := in.(type) {
	case SolveRPM:
		if err := formula.RequireFinite(idCuttingSpeed, "", x.DiameterMm, x.CuttingSpeedMPerMin); err != nil {
			return CuttingSpeedResult{}, err
		}
		if x.CuttingSpeedMPerMin < 0 {
			return CuttingSpeedResult{}, formula.NotComputable(idCuttingSpeed, "cuttingSpeedMPerMin", "cutting speed must not be negative")
		}
		d, vc = x.DiameterMm, x.CuttingSpeedMPerMin
	case SolveSpeed:
		if err := formula.RequireFinite(idCuttingSpeed, "", x.DiameterMm, x.SpindleRpm); err != nil {
			return CuttingSpeedResult{}, err
		}
		if x.SpindleRpm < 0 {
			return CuttingSpeedResult{}, formula.NotComputable(idCuttingSpeed, "spindleRpm", "spindle speed must not be negative")
		}
		d, n = x.DiameterMm, x.SpindleRpm
	default:
		return CuttingSpeedResult{}, formula.UnknownVariant(idCuttingSpeed, "solveFor", in)
	}

	if d <= 0 {
		return CuttingSpeedResult{}, formula.NotComputable(idCuttingSpeed, "diameterMm", "diameter must be greater than 0")
	}
	if _, ok := in.(SolveRPM); ok {
		n = 1000 * vc / (math.Pi * d)
	} else {
		vc = math.Pi * d * n / 1000
	}

	return formula.Finite(idCuttingSpeed, CuttingSpeedResult{
		DiameterMm:          mathx.RoundTo(d, 3),
		SpindleRpm:          mathx.RoundTo(n, 1),
		CuttingSpeedMPerMin: mathx.RoundTo(vc, 2),
	})
}

// ============================================================================
// Milling feed
// ============================================================================

// MillingFeedInput describes a milling cutter and its engagement
type MillingFeedInput struct {
	FeedPerToothMm float64 `json:"feedPerToothMm" yaml:"feedPerToothMm"`
	Teeth          int     `json:"teeth" yaml:"teeth"`
	SpindleRpm     float64 `json:"spindleRpm" yaml:"spindleRpm"`
	DepthMm        float64 `json:"depthMm" yaml:"depthMm"`
	WidthMm        float64 `json:"widthMm" yaml:"widthMm"`
}

// MillingFeedResult holds table feed, feed per revolution and removal rate
type MillingFeedResult struct {
	FeedMmPerMin         float64 `json:"feedMmPerMin" yaml:"feedMmPerMin"`
	FeedPerRevMm         float64 `json:"feedPerRevMm" yaml:"feedPerRevMm"`
	RemovalRateCm3PerMin float64 `json:"removalRateCm3PerMin" yaml:"removalRateCm3PerMin"`
}

// MillingFeed computes vf = fz * z * n and Q = ap * ae * vf / 1000
func MillingFeed(in MillingFeedInput) (MillingFeedResult, error) {
	if err := formula.RequireFinite(idMillingFeed, "", in.FeedPerToothMm, in.SpindleRpm, in.DepthMm, in.WidthMm); err != nil {
		return MillingFeedResult{}, err
	}
	switch {
	case in.FeedPerToothMm <= 0:
		return MillingFeedResult{}, formula.NotComputable(idMillingFeed, "feedPerToothMm", "feed per tooth must be greater than 0")
	case in.Teeth < 1:
		return MillingFeedResult{}, formula.NotComputable(idMillingFeed, "teeth", "cutter needs at least one tooth")
	case in.SpindleRpm < 0:
		return MillingFeedResult{}, formula.NotComputable(idMillingFeed, "spindleRpm", "spindle speed must not be negative")
	case in.DepthMm < 0 || in.WidthMm < 0:
		return MillingFeedResult{}, formula.NotComputable(idMillingFeed, "", "depth and width of cut must not be negative")
	}

	perRev := in.FeedPerToothMm * float64(in.Teeth)
	feed := perRev * in.SpindleRpm
	return formula.Finite(idMillingFeed, MillingFeedResult{
		FeedMmPerMin:         mathx.RoundTo(feed, 2),
		FeedPerRevMm:         mathx.RoundTo(perRev, 4),
		RemovalRateCm3PerMin: mathx.RoundTo(in.DepthMm*in.WidthMm*feed/1000, 3),
	})
}

// ============================================================================
// Machining time
// ============================================================================

// MachiningTimeInput describes the travel of one pass and the pass count
type MachiningTimeInput struct {
	LengthMm     float64 `json:"lengthMm" yaml:"lengthMm"`
	ApproachMm   float64 `json:"approachMm" yaml:"approachMm"`
	FeedMmPerMin float64 `json:"feedMmPerMin" yaml:"feedMmPerMin"`
	Passes       int     `json:"passes" yaml:"passes"`
}

// MachiningTimeResult holds the cutting time
type MachiningTimeResult struct {
	Minutes float64 `json:"minutes" yaml:"minutes"`
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

// MachiningTime computes (length + approach) * passes / feed
func MachiningTime(in MachiningTimeInput) (MachiningTimeResult, error) {
	if err := formula.RequireFinite(idMachiningTime, "", in.LengthMm, in.ApproachMm, in.FeedMmPerMin); err != nil {
		return MachiningTimeResult{}, err
	}
	switch {
	case in.LengthMm < 0 || in.ApproachMm < 0:
		return MachiningTimeResult{}, formula.NotComputable(idMachiningTime, "", "length and approach must not be negative")
	case in.FeedMmPerMin <= 0:
		return MachiningTimeResult{}, formula.NotComputable(idMachiningTime, "feedMmPerMin", "feed must be greater than 0")
	case in.Passes < 1:
		return MachiningTimeResult{}, formula.NotComputable(idMachiningTime, "passes", "passes must be at least 1")
	}

	minutes := (in.LengthMm + in.ApproachMm) * float64(in.Passes) / in.FeedMmPerMin
	return formula.Finite(idMachiningTime, MachiningTimeResult{
		Minutes: mathx.RoundTo(minutes, 3),
		Seconds: mathx.RoundTo(minutes*60, 1),
	})
}

// ============================================================================
// Surface roughness
// ============================================================================

// SurfaceRoughnessInput is the turning feed and the tool nose radius
type SurfaceRoughnessInput struct {
	FeedMmPerRev float64 `json:"feedMmPerRev" yaml:"feedMmPerRev"`
	NoseRadiusMm float64 `json:"noseRadiusMm" yaml:"noseRadiusMm"`
}

// SurfaceRoughnessResult holds the theoretical roughness in microns
type SurfaceRoughnessResult struct {
	RaMicrons float64 `json:"raMicrons" yaml:"raMicrons"`
	RzMicrons float64 `json:"rzMicrons" yaml:"rzMicrons"`
}

// SurfaceRoughness estimates Ra = f² / (32 r) and Rz = f² / (8 r)
func SurfaceRoughness(in SurfaceRoughnessInput) (SurfaceRoughnessResult, error) {
	if err := formula.RequireFinite(idSurfaceRoughness, "", in.FeedMmPerRev, in.NoseRadiusMm); err != nil {
		return SurfaceRoughnessResult{}, err
	}
	if in.FeedMmPerRev < 0 {
		return SurfaceRoughnessResult{}, formula.NotComputable(idSurfaceRoughness, "feedMmPerRev", "feed must not be negative")
	}
	if in.NoseRadiusMm <= 0 {
		return SurfaceRoughnessResult{}, formula.NotComputable(idSurfaceRoughness, "noseRadiusMm", "nose radius must be greater than 0")
	}

	f2 := in.FeedMmPerRev * in.FeedMmPerRev
	return formula.Finite(idSurfaceRoughness, SurfaceRoughnessResult{
		RaMicrons: mathx.RoundTo(f2/(32*in.NoseRadiusMm)*1000, 3),
		RzMicrons: mathx.RoundTo(f2/(8*in.NoseRadiusMm)*1000, 3),
	})
}
