package types

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated: login first")
	ErrVehicleNotFound  = errors.New("vehicle not found")

	// ErrNoStatusData means the vendor call itself succeeded but resolved
	// to an absent payload. Distinct from a present-but-empty payload,
	// which translates to a fully defaulted record.
	ErrNoStatusData = errors.New("no status data returned by vehicle")
)
