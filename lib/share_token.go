package lib

import (
	"encoding/base64"
	"encoding/json"

	"mountspa_server/structs"
)

// ShareQueryParam is the query-string key carrying an encoded configuration.
const ShareQueryParam = "config"

// EncodeConfiguration serializes a configuration into an opaque, URL-safe
// token that survives being pasted into a query string unescaped.
func EncodeConfiguration(cfg *structs.Configuration) (string, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(payload), nil
}

// DecodeConfiguration reverses EncodeConfiguration and applies the result on
// top of base, the default configuration for the hot tub currently being
// viewed. Application is guarded:
//
//   - a token minted for a different hot tub is ignored wholesale,
//   - color indices apply only when still in range for the current color
//     lists (the catalog may have changed since the link was created),
//   - option ids, accessory flags and the service package apply verbatim;
//     pricing already treats unknown ids as zero cost.
//
// A malformed token returns base unchanged together with
// ErrMalformedConfigToken so the caller can surface a recoverable notice.
func DecodeConfiguration(token string, hottub *structs.HotTub, base structs.Configuration) (structs.Configuration, error) {
	payload, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		// Tolerate tokens minted by standard-base64 encoders.
		payload, err = base64.StdEncoding.DecodeString(token)
		if err != nil {
			return base, ErrMalformedConfigToken
		}
	}

	var decoded structs.Configuration
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return base, ErrMalformedConfigToken
	}

	if hottub == nil || decoded.HotTubID != hottub.ID {
		return base, ErrConfigTokenMismatch
	}

	result := base
	if decoded.ShellIndex >= 0 && decoded.ShellIndex < len(hottub.Colors.ShellColors) {
		result.ShellIndex = decoded.ShellIndex
	}
	if decoded.CabinetIndex >= 0 && decoded.CabinetIndex < len(hottub.Colors.CabinetColors) {
		result.CabinetIndex = decoded.CabinetIndex
	}
	if decoded.WaterCareID != "" {
		result.WaterCareID = decoded.WaterCareID
	}
	if decoded.EntertainmentID != "" {
		result.EntertainmentID = decoded.EntertainmentID
	}
	if decoded.ControlID != "" {
		result.ControlID = decoded.ControlID
	}
	if decoded.Accessories != nil {
		result.Accessories = decoded.Accessories
	}
	if decoded.ServicePackage != "" {
		result.ServicePackage = decoded.ServicePackage
	}
	return result, nil
}
