package dto

import "github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	PIN      string `json:"pin"`
	Region   string `json:"region"`
}

func (r *LoginRequest) ToModel() models.Credentials {
	return models.Credentials{
		Username: r.Username,
		Password: r.Password,
		PIN:      r.PIN,
		Region:   r.Region,
	}
}

// Validate collects missing-field errors keyed by field name.
func (r *LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Username == "" {
		errs["username"] = "must be provided"
	}
	if r.Password == "" {
		errs["password"] = "must be provided"
	}
	if r.PIN == "" {
		errs["pin"] = "must be provided"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
