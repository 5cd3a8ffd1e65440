package service

import (
	"fmt"
	"time"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// Spoofing thresholds are tuned to governed commercial vehicles, not
// passenger cars. A loaded truck on a governor does not exceed ~75 mph;
// anything past 90 is not driving and past 150 is not physics.
const (
	staleMedium         = 60 * time.Second
	staleHigh           = 300 * time.Second
	teleportHighMph     = 90.0
	teleportCriticalMph = 150.0
	tightAccuracyMeters = 3.0
	altitudeJumpFeet    = 5000.0
	altitudeExtremeFeet = 8000.0
	altitudeWindow      = time.Hour
)

// MountainPass is one named high-elevation highway corridor where large
// legitimate altitude swings happen on long climbing grades.
type MountainPass struct {
	Name     string
	Location domain.Coordinates
}

// defaultMountainPasses is the fixed allowlist of interstate passes that
// routinely produce >5000 ft swings inside an hour of driving.
var defaultMountainPasses = []MountainPass{
	{Name: "Eisenhower Pass (I-70 CO)", Location: domain.Coordinates{Lat: 39.6797, Lng: -105.9025}},
	{Name: "Vail Pass (I-70 CO)", Location: domain.Coordinates{Lat: 39.5306, Lng: -106.2176}},
	{Name: "Donner Pass (I-80 CA)", Location: domain.Coordinates{Lat: 39.3154, Lng: -120.3205}},
	{Name: "Snoqualmie Pass (I-90 WA)", Location: domain.Coordinates{Lat: 47.4279, Lng: -121.4138}},
	{Name: "Cabbage Hill (I-84 OR)", Location: domain.Coordinates{Lat: 45.5965, Lng: -118.5365}},
	{Name: "Raton Pass (I-25 NM)", Location: domain.Coordinates{Lat: 36.9908, Lng: -104.4877}},
	{Name: "Monteagle Grade (I-24 TN)", Location: domain.Coordinates{Lat: 35.2381, Lng: -85.8319}},
}

const defaultPassRadiusMiles = 15.0

// SpoofingDetector classifies GPS samples as suspicious. Checks run in a
// fixed order and are independent: every applicable finding fires.
type SpoofingDetector struct {
	passes          []MountainPass
	passRadiusMiles float64
	now             func() time.Time
}

// NewSpoofingDetector returns a detector with the built-in mountain-pass
// allowlist and wall-clock time.
func NewSpoofingDetector() *SpoofingDetector {
	return &SpoofingDetector{
		passes:          defaultMountainPasses,
		passRadiusMiles: defaultPassRadiusMiles,
		now:             time.Now,
	}
}

// NewSpoofingDetectorWithPasses allows tests and regional deployments to
// supply their own corridor allowlist and clock.
func NewSpoofingDetectorWithPasses(passes []MountainPass, radiusMiles float64, now func() time.Time) *SpoofingDetector {
	if now == nil {
		now = time.Now
	}
	if radiusMiles <= 0 {
		radiusMiles = defaultPassRadiusMiles
	}
	return &SpoofingDetector{passes: passes, passRadiusMiles: radiusMiles, now: now}
}

// Evaluate runs all checks on current, comparing against prev when available.
// The verdict is aggregated: suspicious iff any finding is HIGH or CRITICAL.
// Suspicious samples are never rejected, only flagged for compliance tooling.
func (d *SpoofingDetector) Evaluate(current domain.LocationPoint, prev *domain.LocationPoint) domain.SpoofVerdict {
	var findings []domain.SpoofFinding

	// 1. Device self-reports a mock location provider.
	if current.MockProvider {
		findings = append(findings, domain.SpoofFinding{
			Type:     domain.FindingMockProvider,
			Severity: domain.SeverityCritical,
			Detail:   "device reports a mock location provider",
		})
	}

	// 2. Staleness at the moment of evaluation. >300s smells like a replay.
	if age := d.now().Sub(current.Timestamp); age > staleHigh {
		findings = append(findings, domain.SpoofFinding{
			Type:     domain.FindingStaleTimestamp,
			Severity: domain.SeverityHigh,
			Detail:   fmt.Sprintf("sample is %.0fs old, possible replay", age.Seconds()),
		})
	} else if age > staleMedium {
		findings = append(findings, domain.SpoofFinding{
			Type:     domain.FindingStaleTimestamp,
			Severity: domain.SeverityMedium,
			Detail:   fmt.Sprintf("sample is %.0fs old", age.Seconds()),
		})
	}

	// 3. Teleportation: implied speed between consecutive samples.
	if prev != nil {
		elapsed := current.Timestamp.Sub(prev.Timestamp)
		if elapsed > 0 {
			impliedMph := domain.Distance(prev.Coordinates(), current.Coordinates()) / elapsed.Hours()
			if impliedMph > teleportCriticalMph {
				findings = append(findings, domain.SpoofFinding{
					Type:     domain.FindingTeleportation,
					Severity: domain.SeverityCritical,
					Detail:   fmt.Sprintf("implied speed %.0f mph", impliedMph),
				})
			} else if impliedMph > teleportHighMph {
				findings = append(findings, domain.SpoofFinding{
					Type:     domain.FindingTeleportation,
					Severity: domain.SeverityHigh,
					Detail:   fmt.Sprintf("implied speed %.0f mph exceeds governed limits", impliedMph),
				})
			}
		}
	}

	// 4. Unrealistically tight accuracy while on battery. Spoofing tools
	// report perfect fixes; real hardware off the charger does not.
	if current.AccuracyMeters > 0 && current.AccuracyMeters < tightAccuracyMeters && !current.Charging {
		findings = append(findings, domain.SpoofFinding{
			Type:     domain.FindingSuspiciousAccuracy,
			Severity: domain.SeverityMedium,
			Detail:   fmt.Sprintf("reported accuracy %.1fm while not charging", current.AccuracyMeters),
		})
	}

	// 5. Altitude jump. Near a known pass corridor the flagging threshold is
	// raised to 8000 ft; an extreme jump is never fully excused and fires
	// HIGH regardless of proximity.
	if prev != nil && prev.AltitudeFeet != nil && current.AltitudeFeet != nil {
		elapsed := current.Timestamp.Sub(prev.Timestamp)
		if elapsed > 0 && elapsed < altitudeWindow {
			delta := *current.AltitudeFeet - *prev.AltitudeFeet
			if delta < 0 {
				delta = -delta
			}
			switch {
			case delta > altitudeExtremeFeet:
				findings = append(findings, domain.SpoofFinding{
					Type:     domain.FindingAltitudeJump,
					Severity: domain.SeverityHigh,
					Detail:   fmt.Sprintf("altitude changed %.0fft in %s", delta, elapsed.Round(time.Second)),
				})
			case delta > altitudeJumpFeet && !d.nearMountainPass(current.Coordinates()):
				findings = append(findings, domain.SpoofFinding{
					Type:     domain.FindingAltitudeJump,
					Severity: domain.SeverityMedium,
					Detail:   fmt.Sprintf("altitude changed %.0fft in %s outside known pass corridors", delta, elapsed.Round(time.Second)),
				})
			}
		}
	}

	verdict := domain.SpoofVerdict{Findings: findings}
	for _, f := range findings {
		if f.Severity == domain.SeverityHigh || f.Severity == domain.SeverityCritical {
			verdict.Suspicious = true
			break
		}
	}
	return verdict
}

func (d *SpoofingDetector) nearMountainPass(loc domain.Coordinates) bool {
	for _, pass := range d.passes {
		if domain.Distance(loc, pass.Location) <= d.passRadiusMiles {
			return true
		}
	}
	return false
}
