package service

import "github.com/fleetedge/telematics-core/internal/core/domain"

// ChannelsForRole maps an authenticated actor to the websocket channels the
// external fan-out layer should subscribe them to. Pure function, read by the
// websocket layer as configuration; this core never pushes to the channels.
func ChannelsForRole(role, companyID string, activeLoadIDs []string, facilityID string) []string {
	var channels []string

	if companyID != "" {
		channels = append(channels, "company:"+companyID)
	}
	for _, loadID := range activeLoadIDs {
		if loadID != "" {
			channels = append(channels, "load:"+loadID)
		}
	}

	switch role {
	case domain.RoleDriver:
		// Drivers only follow their own loads and company feed.
	case domain.RoleDispatcher:
		channels = append(channels, "fleet:"+companyID)
		if facilityID != "" {
			channels = append(channels, "facility:"+facilityID)
		}
	case domain.RoleSafety:
		channels = append(channels, "safety:"+companyID, "compliance:"+companyID)
	case domain.RoleAdmin:
		channels = append(channels, "fleet:"+companyID, "safety:"+companyID, "compliance:"+companyID)
		if facilityID != "" {
			channels = append(channels, "facility:"+facilityID)
		}
	}

	return channels
}
