package stellarnetwork

import (
	"strings"

	"github.com/stellar/go/network"
	"github.com/stellar/go/xdr"
)

// Network establishes the stellar network that a transaction should apply to.
// Its passphrase influences how a transaction is hashed for the purposes of
// signature generation, so it is kept byte for byte as given.
//
// The zero Network means "no network".
type Network struct {
	passphrase string
}

var (
	// PublicNetwork is the main public stellar network.
	PublicNetwork = Network{network.PublicNetworkPassphrase}

	// TestNetwork is the test stellar network (often called testnet).
	TestNetwork = Network{network.TestNetworkPassphrase}
)

// New makes a custom Network for passphrase.  The passphrase is not
// normalized in any way; only the empty string is rejected since that
// is the "no network" value.
func New(passphrase string) (Network, error) {
	if passphrase == "" {
		return Network{}, ErrEmptyPassphrase
	}
	return Network{passphrase: passphrase}, nil
}

// MustNew is like New but panics on error.
func MustNew(passphrase string) Network {
	n, err := New(passphrase)
	if err != nil {
		panic(err)
	}
	return n
}

// Named returns the preset network for name ("test", "public" and a few
// common aliases, case insensitive).
func Named(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "test", "testnet":
		return TestNetwork, nil
	case "public", "pubnet", "mainnet":
		return PublicNetwork, nil
	default:
		return Network{}, ErrUnknownNetworkName{Name: name}
	}
}

// Passphrase returns the network passphrase.
func (n Network) Passphrase() string { return n.passphrase }

func (n Network) String() string {
	switch n {
	case Network{}:
		return "<none>"
	case TestNetwork:
		return "test"
	case PublicNetwork:
		return "public"
	}
	return n.passphrase
}

// IsZero returns true for the "no network" value.
func (n Network) IsZero() bool { return n.passphrase == "" }

// Equal returns true if both networks have the same passphrase.
func (n Network) Equal(o Network) bool { return n.passphrase == o.passphrase }

// ID returns the network ID derived from the passphrase.
func (n Network) ID() [32]byte {
	return network.ID(n.passphrase)
}

// HashTransactionEnvelope returns the hash of the transaction in txEnv
// that signers on this network sign.
func (n Network) HashTransactionEnvelope(txEnv xdr.TransactionEnvelope) ([32]byte, error) {
	if n.IsZero() {
		return [32]byte{}, ErrNetworkNotConfigured
	}
	return network.HashTransactionInEnvelope(txEnv, n.passphrase)
}
