package discovery

import "github.com/fen-lake/st2mqtt/internal/build"

// Origin implements the origin mapping for the discovery payload. This
// provides context to Home Assistant on the origin of the components.
type Origin struct {
	Name       string `json:"name"`
	SWVersion  string `json:"sw,omitempty"`
	SupportURL string `json:"url,omitempty"`
}

// NewOrigin returns the default Origin with the following values:
//   - Name: "st2mqtt"
//   - SWVersion: [build.Version]
//   - SupportURL: "https://github.com/fen-lake/st2mqtt"
func NewOrigin() *Origin {
	return &Origin{
		Name:       "st2mqtt",
		SWVersion:  build.Version(),
		SupportURL: "https://" + build.Package(),
	}
}
