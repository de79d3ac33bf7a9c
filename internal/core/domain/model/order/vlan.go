package order

import (
	"fmt"

	"routerorders/internal/pkg/errs"
)

// VlanType is the VLAN configuration chosen for the inside Ethernet
// connection. It is a closed enumeration; external strings are parsed with
// ParseVlanType.
type VlanType int

const (
	// VlanUnknown represents an invalid or undefined VLAN configuration.
	VlanUnknown VlanType = iota

	// VlanUnspecified leaves the VLAN layout to the installer.
	VlanUnspecified

	// VlanSpecified means the customer supplies an explicit VLAN layout.
	VlanSpecified

	// VlanOpenTrunk trunks all VLANs; the only configuration for which the
	// DHCP flag is meaningful.
	VlanOpenTrunk
)

func getVlanTypeStrings() map[VlanType]string {
	return map[VlanType]string{
		VlanUnknown:     "UNKNOWN",
		VlanUnspecified: "UNSPECIFIED",
		VlanSpecified:   "SPECIFIED",
		VlanOpenTrunk:   "OPEN_TRUNK",
	}
}

func getValidVlanTypeStrings() map[VlanType]string {
	//nolint:exhaustive // VlanUnknown is intentionally excluded as it's invalid
	return map[VlanType]string{
		VlanUnspecified: "UNSPECIFIED",
		VlanSpecified:   "SPECIFIED",
		VlanOpenTrunk:   "OPEN_TRUNK",
	}
}

// ParseVlanType converts an external VLAN string to its VlanType value,
// rejecting unrecognized values.
func ParseVlanType(s string) (VlanType, error) {
	for v, str := range getValidVlanTypeStrings() {
		if str == s {
			return v, nil
		}
	}
	return VlanUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vlans",
		fmt.Errorf("%q is not a recognized VLAN configuration", s),
	)
}

// Validate checks if the VlanType is a member of the closed enumeration.
func (v VlanType) Validate() error {
	if _, ok := getValidVlanTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vlans", fmt.Errorf("%d is not a valid VLAN configuration", v))
	}
	return nil
}

// String returns the canonical name of the VLAN configuration.
// Implements fmt.Stringer.
func (v VlanType) String() string {
	if str, ok := getVlanTypeStrings()[v]; ok {
		return str
	}
	return "UNKNOWN"
}
