package order

import (
	"errors"
	"fmt"
	"strings"

	"routerorders/internal/pkg/errs"
)

// Field length bounds for the site contact bundle.
const (
	maxSiteNameLen     = 100
	maxSiteAddressLen  = 200
	maxSitePostcodeLen = 20
	maxSiteEmailLen    = 100
	maxSitePhoneLen    = 20
	maxContactNameLen  = 100
)

// Site is the value object bundling the delivery site's contact details. The
// primary email doubles as the owner identity of the order: reorders are only
// permitted for the requester whose email matches it.
type Site struct {
	name           string
	address        string
	postcode       string
	primaryEmail   string
	secondaryEmail string
	phoneNumber    string
	contactName    string

	isConstructed bool
}

// NewSite creates a validated site contact bundle. Name, address, postcode,
// primary email and contact name are required; the secondary email and phone
// number are optional.
func NewSite(
	name string,
	address string,
	postcode string,
	primaryEmail string,
	secondaryEmail string,
	phoneNumber string,
	contactName string,
) (Site, error) {
	site := Site{isConstructed: true}

	if err := errors.Join(
		site.setName(name),
		site.setAddress(address),
		site.setPostcode(postcode),
		site.setPrimaryEmail(primaryEmail),
		site.setSecondaryEmail(secondaryEmail),
		site.setPhoneNumber(phoneNumber),
		site.setContactName(contactName),
	); err != nil {
		return Site{}, err
	}

	return site, nil
}

// Validate ensures the site was created via NewSite.
func (s Site) Validate() error {
	if !s.isConstructed {
		return errs.NewValueIsRequiredError("Site must be created via NewSite")
	}
	return nil
}

// Name returns the site name.
func (s Site) Name() string { return s.name }

// Address returns the site street address.
func (s Site) Address() string { return s.address }

// Postcode returns the site postcode.
func (s Site) Postcode() string { return s.postcode }

// PrimaryEmail returns the primary contact email, which is also the owner
// identity of the order.
func (s Site) PrimaryEmail() string { return s.primaryEmail }

// SecondaryEmail returns the optional secondary contact email.
func (s Site) SecondaryEmail() string { return s.secondaryEmail }

// PhoneNumber returns the optional site phone number.
func (s Site) PhoneNumber() string { return s.phoneNumber }

// ContactName returns the name of the site contact person.
func (s Site) ContactName() string { return s.contactName }

// WithPrimaryEmail returns a copy of the site with the primary contact
// replaced. Used by reorder, which resets the owner to the requester.
func (s Site) WithPrimaryEmail(email string) (Site, error) {
	copied := s
	if err := copied.setPrimaryEmail(email); err != nil {
		return Site{}, err
	}
	return copied, nil
}

func (s *Site) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("siteName")
	}
	if len(name) > maxSiteNameLen {
		return errs.NewValueIsOutOfRangeError("siteName", len(name), 1, maxSiteNameLen)
	}
	s.name = name
	return nil
}

func (s *Site) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("siteAddress")
	}
	if len(address) > maxSiteAddressLen {
		return errs.NewValueIsOutOfRangeError("siteAddress", len(address), 1, maxSiteAddressLen)
	}
	s.address = address
	return nil
}

func (s *Site) setPostcode(postcode string) error {
	if postcode == "" {
		return errs.NewValueIsRequiredError("sitePostcode")
	}
	if len(postcode) > maxSitePostcodeLen {
		return errs.NewValueIsOutOfRangeError("sitePostcode", len(postcode), 1, maxSitePostcodeLen)
	}
	s.postcode = postcode
	return nil
}

func (s *Site) setPrimaryEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("sitePrimaryEmail")
	}
	if len(email) > maxSiteEmailLen {
		return errs.NewValueIsOutOfRangeError("sitePrimaryEmail", len(email), 1, maxSiteEmailLen)
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("sitePrimaryEmail",
			fmt.Errorf("%q is not an email address", email))
	}
	s.primaryEmail = email
	return nil
}

func (s *Site) setSecondaryEmail(email string) error {
	if email == "" {
		return nil
	}
	if len(email) > maxSiteEmailLen {
		return errs.NewValueIsOutOfRangeError("siteSecondaryEmail", len(email), 1, maxSiteEmailLen)
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("siteSecondaryEmail",
			fmt.Errorf("%q is not an email address", email))
	}
	s.secondaryEmail = email
	return nil
}

func (s *Site) setPhoneNumber(phone string) error {
	if phone == "" {
		return nil
	}
	if len(phone) > maxSitePhoneLen {
		return errs.NewValueIsOutOfRangeError("sitePhoneNumber", len(phone), 1, maxSitePhoneLen)
	}
	s.phoneNumber = phone
	return nil
}

func (s *Site) setContactName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("siteContactName")
	}
	if len(name) > maxContactNameLen {
		return errs.NewValueIsOutOfRangeError("siteContactName", len(name), 1, maxContactNameLen)
	}
	s.contactName = name
	return nil
}
