// Package errors provides standardized error types for the units codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion failure classes
var (
	// ErrUnknownUnit indicates a token that belongs to no domain
	ErrUnknownUnit = errors.New("unrecognized unit")
	// ErrCrossDomain indicates a cross-domain pair with no physical bridge
	ErrCrossDomain = errors.New("unsupported cross-domain conversion")
	// ErrUnsupportedUnit indicates a classified token with no conversion rule
	ErrUnsupportedUnit = errors.New("unsupported unit")
	// ErrBadExponent indicates an exponent below 1
	ErrBadExponent = errors.New("invalid exponent")
	// ErrZeroQuantity indicates a zero value where the photon relation divides by it
	ErrZeroQuantity = errors.New("zero quantity")
)

// UnknownUnitError reports a unit token that classified into no domain.
type UnknownUnitError struct {
	Token string // The token as the user typed it
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unrecognized unit %q", e.Token)
}

func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}

// CrossDomainError reports a conversion between two domains with no bridge.
type CrossDomainError struct {
	From string // Source domain name
	To   string // Destination domain name
}

func (e *CrossDomainError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

func (e *CrossDomainError) Unwrap() error {
	return ErrCrossDomain
}

// UnsupportedUnitError reports a token that classified into a domain but has
// no entry in that domain's conversion table. The classifier and the
// conversion tables are built from the same data, so hitting this means the
// tables have diverged.
type UnsupportedUnitError struct {
	Token  string // Offending token
	Domain string // Domain it classified into
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported %s unit %q", e.Domain, e.Token)
}

func (e *UnsupportedUnitError) Unwrap() error {
	return ErrUnsupportedUnit
}

// ExponentError reports a result exponent below 1.
type ExponentError struct {
	Exponent int
}

func (e *ExponentError) Error() string {
	return fmt.Sprintf("exponent must be a positive integer, got %d", e.Exponent)
}

func (e *ExponentError) Unwrap() error {
	return ErrBadExponent
}

// ZeroQuantityError reports a zero input value on the length/energy bridge,
// where inverting the wavenumber would divide by zero.
type ZeroQuantityError struct {
	Domain string // Domain of the zero-valued input
}

func (e *ZeroQuantityError) Error() string {
	return fmt.Sprintf("cannot relate zero %s to a photon", e.Domain)
}

func (e *ZeroQuantityError) Unwrap() error {
	return ErrZeroQuantity
}

// Helper functions for creating common errors

// NewUnknownUnit creates an UnknownUnitError
func NewUnknownUnit(token string) *UnknownUnitError {
	return &UnknownUnitError{Token: token}
}

// NewCrossDomain creates a CrossDomainError
func NewCrossDomain(from, to string) *CrossDomainError {
	return &CrossDomainError{From: from, To: to}
}

// NewUnsupportedUnit creates an UnsupportedUnitError
func NewUnsupportedUnit(token, domain string) *UnsupportedUnitError {
	return &UnsupportedUnitError{Token: token, Domain: domain}
}

// NewExponent creates an ExponentError
func NewExponent(exponent int) *ExponentError {
	return &ExponentError{Exponent: exponent}
}

// NewZeroQuantity creates a ZeroQuantityError
func NewZeroQuantity(domain string) *ZeroQuantityError {
	return &ZeroQuantityError{Domain: domain}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
