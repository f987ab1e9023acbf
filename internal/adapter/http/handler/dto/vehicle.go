package dto

import "github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"

// StatusRequest carries the optional refresh flag. The flag is accepted for
// client compatibility but a vendor refresh is always forced.
type StatusRequest struct {
	Refresh *bool `json:"refresh"`
}

// StartRequest carries optional remote-start options; absent fields fall
// back to the default configuration (climate on, 10 minutes).
type StartRequest struct {
	AirCtrl  *bool `json:"airCtrl"`
	Duration *int  `json:"duration"`
}

func (r *StartRequest) ToModel() models.StartConfig {
	cfg := models.DefaultStartConfig()
	if r.AirCtrl != nil {
		cfg.AirCtrl = *r.AirCtrl
	}
	if r.Duration != nil {
		cfg.Duration = *r.Duration
	}
	return cfg
}
