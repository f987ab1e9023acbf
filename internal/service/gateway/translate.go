package gateway

import (
	"time"

	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/types"
)

const defaultTemperature = 72

// Translate maps a raw vendor status payload into the fixed application
// record. It is a pure function of its argument: every field is extracted
// independently and defaulted when absent, values are passed through with
// no range validation or unit conversion.
//
// A nil payload is an error (the vendor returned nothing); a present but
// empty payload yields the fully defaulted record.
func Translate(raw map[string]any) (*models.VehicleStatus, error) {
	if raw == nil {
		return nil, types.ErrNoStatusData
	}

	// Some models nest the actual fields one level down.
	src := raw
	if nested, ok := raw["vehicleStatus"].(map[string]any); ok {
		src = nested
	}

	st := &models.VehicleStatus{
		Engine:      "OFF",
		LastUpdated: time.Now(),
	}
	if truthy(at(src, "engine")) {
		st.Engine = "ON"
	}

	st.Doors = models.DoorStatus{
		Locked:         truthy(at(src, "doorLock")),
		HoodOpen:       truthy(at(src, "doorOpen", "hood")),
		TrunkOpen:      truthy(at(src, "doorOpen", "trunk")),
		FrontLeftOpen:  truthy(at(src, "doorOpen", "frontLeft")),
		FrontRightOpen: truthy(at(src, "doorOpen", "frontRight")),
		BackLeftOpen:   truthy(at(src, "doorOpen", "backLeft")),
		BackRightOpen:  truthy(at(src, "doorOpen", "backRight")),
	}

	st.Climate = models.ClimateStatus{
		Active:      truthy(at(src, "airCtrlOn")),
		Temperature: number(at(src, "airTemp", "value"), defaultTemperature),
		Defrost:     truthy(at(src, "defrost")),
	}

	st.Battery = models.BatteryStatus{
		Percentage: number(at(src, "evStatus", "batteryStatus"), 0),
		Range:      batteryRange(src),
		Charging:   truthy(at(src, "evStatus", "batteryCharge")),
	}

	st.Fuel = models.FuelStatus{
		Level: number(at(src, "fuelLevel"), 0),
		Range: number(at(src, "dte", "value"), 0),
	}

	st.Odometer = odometer(src)

	return st, nil
}

// batteryRange digs out evStatus.drvDistance[0].rangeByFuel.evModeRange.value.
func batteryRange(src map[string]any) float64 {
	arr, ok := at(src, "evStatus", "drvDistance").([]any)
	if !ok || len(arr) == 0 {
		return 0
	}
	first, ok := arr[0].(map[string]any)
	if !ok {
		return 0
	}
	return number(at(first, "rangeByFuel", "evModeRange", "value"), 0)
}

// odometer tolerates both the bare numeric form and the {value, unit} form.
func odometer(src map[string]any) float64 {
	if m, ok := at(src, "odometer").(map[string]any); ok {
		return number(at(m, "value"), 0)
	}
	return number(at(src, "odometer"), 0)
}

// at walks nested maps along path, returning nil when any hop is missing
// or not a map.
func at(m map[string]any, path ...string) any {
	var cur any = m
	for _, key := range path {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = mm[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// truthy reports whether a semi-structured flag is set: boolean true or a
// non-zero number (the vendor uses 0/1 for door flags on some models).
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return false
	}
}

// number extracts a numeric value, falling back to def.
func number(v any, def float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return def
	}
}
