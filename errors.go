package stellarnetwork

import (
	"errors"
	"fmt"
)

var (
	ErrNetworkNotConfigured = errors.New("stellar network not configured")
	ErrEmptyPassphrase      = errors.New("network passphrase is empty")
	ErrAddressNotSeed       = errors.New("string provided is an address not a seed")
	ErrSeedNotAddress       = errors.New("string provided is a seed not an address")
	ErrUnknownKeypairType   = errors.New("unknown keypair type")
	ErrNoSignature          = errors.New("no signature found for source account")
	ErrBadSignature         = errors.New("bad signature")
	ErrConfigConflict       = errors.New("config sets both network and passphrase")
)

// ErrUnknownNetworkName is returned when a network name is not one of
// the presets.
type ErrUnknownNetworkName struct {
	Name string
}

// Error implements error for ErrUnknownNetworkName.
func (e ErrUnknownNetworkName) Error() string {
	return fmt.Sprintf("unknown stellar network %q", e.Name)
}

// ErrNetworkMismatch is returned when a horizon server is running a
// different network than the one selected.
type ErrNetworkMismatch struct {
	Want string
	Got  string
}

func (e ErrNetworkMismatch) Error() string {
	return fmt.Sprintf("horizon network passphrase %q, expected %q", e.Got, e.Want)
}
