package ports

import "context"

// ComplianceStatus grades an interstate compliance check result.
type ComplianceStatus string

const (
	ComplianceOK   ComplianceStatus = "ok"
	ComplianceWarn ComplianceStatus = "warn"
	ComplianceFail ComplianceStatus = "fail"
)

// ComplianceResult is what the interstate check returns. Warn and Fail
// results are surfaced to the driver by the event processor.
type ComplianceResult struct {
	Status ComplianceStatus
	Detail string
}

// ComplianceChecker is the boundary to the external interstate-compliance
// system, invoked on state-border crossings.
type ComplianceChecker interface {
	CheckInterstate(ctx context.Context, loadID, fromState, toState string) (ComplianceResult, error)
}
