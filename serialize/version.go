package serialize

import (
	"fmt"

	"github.com/katalvlaran/qop/config"
	"github.com/katalvlaran/qop/logger"
)

// Version is the schema stamp carried by every document.
type Version struct {
	Major uint32 `json:"major_version" yaml:"major_version" msgpack:"major_version"`
	Minor uint32 `json:"minor_version" yaml:"minor_version" msgpack:"minor_version"`
}

// CurrentVersion returns the stamp written by this process.
func CurrentVersion() Version {
	s := config.Get().Schema

	return Version{Major: s.MajorVersion, Minor: s.MinorVersion}
}

// String renders "major.minor".
func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Check rejects a stamp whose major version exceeds the supported one.
func (v Version) Check() error {
	supported := CurrentVersion()
	if v.Major > supported.Major {
		logger.Get().Warn().Str("version", v.String()).Str("supported", supported.String()).
			Msg("rejecting document with newer schema")

		return fmt.Errorf("%w: %s, supported %s", ErrUnsupportedVersion, v, supported)
	}

	return nil
}
