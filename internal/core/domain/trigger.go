package domain

// TriggerKind enumerates the closed set of instructions this core hands to the
// external dispatch layer. The core never performs the side effect itself.
type TriggerKind string

const (
	TriggerNotification       TriggerKind = "notification"
	TriggerWebsocket          TriggerKind = "websocket"
	TriggerDetentionBilling   TriggerKind = "detention_billing"
	TriggerGamification       TriggerKind = "gamification"
	TriggerFinancial          TriggerKind = "financial"
	TriggerCompliance         TriggerKind = "compliance"
	TriggerSignalLossSuppress TriggerKind = "signal_loss_suppressed"
)

// Notification targets. "system" marks triggers with no human recipient.
const (
	TargetDriver     = "driver"
	TargetTerminal   = "terminal"
	TargetShipper    = "shipper"
	TargetBroker     = "broker"
	TargetSafety     = "safety_manager"
	TargetCompliance = "compliance_officer"
	TargetAllParties = "all_parties"
	TargetSystem     = "system"
)

// TriggerPayload is the closed union of per-kind payloads. Exactly one
// concrete type corresponds to each TriggerKind so the dispatch layer can
// switch exhaustively instead of string-comparing loose maps.
type TriggerPayload interface{ triggerPayload() }

// TriggerResult is one instruction to an external consumer, produced by the
// geofence event processor and never persisted by this core.
type TriggerResult struct {
	Kind    TriggerKind
	Target  string
	Payload TriggerPayload
}

// NotificationPayload asks the dispatch layer to notify a role.
type NotificationPayload struct {
	Title    string
	Message  string
	LoadID   string
	DriverID string
}

// WebsocketPayload asks the fan-out layer to push a live update on a channel.
type WebsocketPayload struct {
	Channel  string
	Event    string
	LoadID   string
	DriverID string
}

// DetentionBillingPayload flags a dwell that crossed the free-time allowance.
type DetentionBillingPayload struct {
	LoadID       string
	LocationType DetentionLocationType
	DwellMinutes int
}

// GamificationPayload feeds the driver-scoring subsystem.
type GamificationPayload struct {
	DriverID string
	LoadID   string
	Hook     string
}

// FinancialPayload feeds the settlement subsystem.
type FinancialPayload struct {
	LoadID string
	Event  string
}

// CompliancePayload reports a jurisdictional crossing and its check outcome.
type CompliancePayload struct {
	LoadID    string
	DriverID  string
	FromState string
	ToState   string
	Status    string
	Detail    string
}

// SignalLossSuppressedPayload records that an EXIT was treated as a GPS
// artifact and had no downstream effect.
type SignalLossSuppressedPayload struct {
	DriverID   string
	GeofenceID string
	LostForSec int64
}

func (NotificationPayload) triggerPayload()         {}
func (WebsocketPayload) triggerPayload()            {}
func (DetentionBillingPayload) triggerPayload()     {}
func (GamificationPayload) triggerPayload()         {}
func (FinancialPayload) triggerPayload()            {}
func (CompliancePayload) triggerPayload()           {}
func (SignalLossSuppressedPayload) triggerPayload() {}
