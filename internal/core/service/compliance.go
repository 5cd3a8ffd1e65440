package service

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/ports"
)

// staticComplianceChecker is the default stand-in for the external interstate
// compliance system. It applies a fixed permit-reminder table; deployments
// wire the real checker at the same port.
type staticComplianceChecker struct{}

// NewStaticComplianceChecker returns the built-in checker.
func NewStaticComplianceChecker() ports.ComplianceChecker {
	return staticComplianceChecker{}
}

// statePermitWarnings lists states whose entry carries a standing permit
// reminder regardless of origin.
var statePermitWarnings = map[string]string{
	"NY": "NY HUT permit required before operating",
	"NM": "NM weight-distance permit required",
	"KY": "KYU number required for vehicles over 59,999 lbs",
	"OR": "Oregon weight-mile tax enrollment required",
	"CA": "CARB compliance required for diesel vehicles",
}

func (staticComplianceChecker) CheckInterstate(_ context.Context, _ string, fromState, toState string) (ports.ComplianceResult, error) {
	if fromState == toState {
		return ports.ComplianceResult{Status: ports.ComplianceOK}, nil
	}
	if warning, ok := statePermitWarnings[toState]; ok {
		return ports.ComplianceResult{Status: ports.ComplianceWarn, Detail: warning}, nil
	}
	return ports.ComplianceResult{Status: ports.ComplianceOK}, nil
}
