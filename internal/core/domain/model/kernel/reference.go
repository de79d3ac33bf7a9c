package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"routerorders/internal/pkg/errs"

	"github.com/google/uuid"
)

// referencePrefix is the fixed prefix of every order reference number.
const referencePrefix = "BT-"

// referencePattern matches the canonical reference format: the prefix followed
// by eight uppercase hexadecimal characters taken from a random UUID.
var referencePattern = regexp.MustCompile(`^BT-[0-9A-F]{8}$`)

// ErrReferenceNumberIsNotConstructed indicates that a ReferenceNumber was not
// created through NewReferenceNumber or ReferenceNumberFromString.
var ErrReferenceNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"ReferenceNumber must be created via NewReferenceNumber or ReferenceNumberFromString",
)

// ReferenceNumber is the value object for the externally shared order
// reference (e.g. "BT-1A2B3C4D"). It is assigned exactly once when an order
// is placed and never changes afterwards; a reorder produces a new order with
// a new reference.
//
// The zero value is invalid and fails Validate. Lookups by reference are
// case-sensitive: strings that differ in case are different references.
type ReferenceNumber struct {
	value string
}

// NewReferenceNumber generates a fresh reference from a random UUID. The
// resulting value is of the form "BT-" plus the first eight hex characters of
// the UUID, uppercased.
func NewReferenceNumber() ReferenceNumber {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ReferenceNumber{
		value: referencePrefix + strings.ToUpper(raw[:8]),
	}
}

// ReferenceNumberFromString parses a reference from its string form,
// validating the canonical format. No case folding is applied.
func ReferenceNumberFromString(s string) (ReferenceNumber, error) {
	if s == "" {
		return ReferenceNumber{}, errs.NewValueIsRequiredError("referenceNumber")
	}
	if !referencePattern.MatchString(s) {
		return ReferenceNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"referenceNumber",
			fmt.Errorf("%q does not match the BT-XXXXXXXX format", s),
		)
	}
	return ReferenceNumber{value: s}, nil
}

// Validate ensures the reference was created through a constructor.
func (r ReferenceNumber) Validate() error {
	if r.value == "" {
		return ErrReferenceNumberIsNotConstructed
	}
	return nil
}

// String returns the reference in its external form.
func (r ReferenceNumber) String() string {
	return r.value
}

// IsEqual compares two references by exact value.
func (r ReferenceNumber) IsEqual(other ReferenceNumber) bool {
	return r.value == other.value
}
