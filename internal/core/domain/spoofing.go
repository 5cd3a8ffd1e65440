package domain

// FindingSeverity grades a spoofing finding.
type FindingSeverity string

const (
	SeverityLow      FindingSeverity = "low"
	SeverityMedium   FindingSeverity = "medium"
	SeverityHigh     FindingSeverity = "high"
	SeverityCritical FindingSeverity = "critical"
)

// FindingType identifies which heuristic fired.
type FindingType string

const (
	FindingMockProvider       FindingType = "mock_provider"
	FindingStaleTimestamp     FindingType = "stale_timestamp"
	FindingTeleportation      FindingType = "teleportation"
	FindingSuspiciousAccuracy FindingType = "suspicious_accuracy"
	FindingAltitudeJump       FindingType = "altitude_jump"
)

// SpoofFinding is one typed result from the spoofing detector.
type SpoofFinding struct {
	Type     FindingType     `json:"type"`
	Severity FindingSeverity `json:"severity"`
	Detail   string          `json:"detail"`
}

// SpoofVerdict aggregates all findings for a single GPS sample.
type SpoofVerdict struct {
	Findings []SpoofFinding `json:"findings"`
	// Suspicious is true iff any finding is HIGH or CRITICAL. Suspicious
	// points are flagged, never rejected: false positives on mountain
	// grades would otherwise break tracking entirely.
	Suspicious bool `json:"suspicious"`
}

// FindingTypes returns the fired heuristic names, used to tag breadcrumbs.
func (v SpoofVerdict) FindingTypes() []string {
	if len(v.Findings) == 0 {
		return nil
	}
	out := make([]string, 0, len(v.Findings))
	for _, f := range v.Findings {
		out = append(out, string(f.Type))
	}
	return out
}
