package stellarnetwork

import (
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/xdr"
)

// SeedStr is a secret stellar seed.  Its String method is redacted so it
// can't end up in a log line by accident.
type SeedStr string

// AddressStr is a public stellar account address (G...).
type AddressStr string

// NewSeedStr checks that s parses as a full keypair.
func NewSeedStr(s string) (SeedStr, error) {
	kp, err := keypair.Parse(s)
	if err != nil {
		return "", err
	}
	switch kp.(type) {
	case *keypair.Full:
		return SeedStr(s), nil
	case *keypair.FromAddress:
		return "", ErrAddressNotSeed
	}
	return "", ErrUnknownKeypairType
}

func (s SeedStr) String() string {
	return "DONOTLOGDONOTLOGDONOTLOGDONOTLOGDONOTLOGDONOTLOGDONOTLOG"
}

// SecureNoLogString returns the seed itself.  Never log or persist it.
func (s SeedStr) SecureNoLogString() string {
	return string(s)
}

func (s SeedStr) full() (*keypair.Full, error) {
	kp, err := keypair.Parse(string(s))
	if err != nil {
		return nil, err
	}
	full, ok := kp.(*keypair.Full)
	if !ok {
		return nil, ErrAddressNotSeed
	}
	return full, nil
}

// NewAddressStr checks that s parses as an address-only keypair.
func NewAddressStr(s string) (AddressStr, error) {
	kp, err := keypair.Parse(s)
	if err != nil {
		return "", err
	}
	switch kp.(type) {
	case *keypair.FromAddress:
		return AddressStr(s), nil
	case *keypair.Full:
		return "", ErrSeedNotAddress
	}
	return "", ErrUnknownKeypairType
}

// addressOf returns the account behind a (possibly muxed) account.  Any
// memo ID is dropped.
func addressOf(mux xdr.MuxedAccount) (AddressStr, error) {
	aid := mux.ToAccountId()
	return NewAddressStr(aid.Address())
}

func (s AddressStr) String() string { return string(s) }
