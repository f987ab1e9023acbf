package types

// ServiceName labels logs and metrics emitted by this process.
const ServiceName = "bluelink-gateway"

// Log action names carried through wrap.WithAction.
const (
	ActionLogin           = "login"
	ActionListVehicles    = "list_vehicles"
	ActionVehicleStatus   = "vehicle_status"
	ActionVehicleLocation = "vehicle_location"
	ActionRemoteCommand   = "remote_command"
	ActionVendorCall      = "vendor_call"
	ActionHealthCheck     = "health_check"
)
