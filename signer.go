package stellarnetwork

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/xdr"
)

// Signer signs and verifies transaction envelopes for whatever network is
// current in its Registry.  It refuses to do anything while no network is
// set rather than hash with an empty passphrase.
type Signer struct {
	reg *Registry
}

// NewSigner creates a Signer that reads the network from reg.
func NewSigner(reg *Registry) *Signer {
	return &Signer{reg: reg}
}

// SignResult contains the result of signing a transaction.
type SignResult struct {
	From       AddressStr // signer
	Signed     string     // signed transaction envelope (base64)
	TxHash     string     // transaction hash (hex)
	Passphrase string     // network the hash was computed for
}

func (s *Signer) network() (Network, error) {
	n, ok := s.reg.Current()
	if !ok {
		return Network{}, ErrNetworkNotConfigured
	}
	return n, nil
}

// Hash returns the hash of the transaction in txEnv on the current network.
func (s *Signer) Hash(txEnv xdr.TransactionEnvelope) ([32]byte, error) {
	n, err := s.network()
	if err != nil {
		return [32]byte{}, err
	}
	hash, err := n.HashTransactionEnvelope(txEnv)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "unable to hash tx")
	}
	return hash, nil
}

// Sign returns a copy of txEnv with a signature by from added.  txEnv
// itself is left alone.  For fee bump envelopes the signature goes on the
// outer transaction.
func (s *Signer) Sign(txEnv xdr.TransactionEnvelope, from SeedStr) (SignResult, error) {
	n, err := s.network()
	if err != nil {
		return SignResult{}, err
	}
	hash, err := n.HashTransactionEnvelope(txEnv)
	if err != nil {
		return SignResult{}, errors.Wrap(err, "unable to hash tx")
	}

	kp, err := from.full()
	if err != nil {
		return SignResult{}, errors.Wrap(err, "cannot parse signer keypair")
	}
	sig, err := kp.SignDecorated(hash[:])
	if err != nil {
		return SignResult{}, errors.Wrap(err, "cannot sign")
	}

	// the envelope arms are pointers, so round trip to get our own copy
	b64, err := xdr.MarshalBase64(txEnv)
	if err != nil {
		return SignResult{}, errors.Wrap(err, "unable to encode envelope")
	}
	var out xdr.TransactionEnvelope
	if err := xdr.SafeUnmarshalBase64(b64, &out); err != nil {
		return SignResult{}, errors.Wrap(err, "unable to copy envelope")
	}

	switch out.Type {
	case xdr.EnvelopeTypeEnvelopeTypeTxV0:
		out.V0.Signatures = append(out.V0.Signatures, sig)
	case xdr.EnvelopeTypeEnvelopeTypeTx:
		out.V1.Signatures = append(out.V1.Signatures, sig)
	case xdr.EnvelopeTypeEnvelopeTypeTxFeeBump:
		out.FeeBump.Signatures = append(out.FeeBump.Signatures, sig)
	default:
		return SignResult{}, errors.Errorf("invalid envelope type %s", out.Type)
	}

	signed, err := xdr.MarshalBase64(out)
	if err != nil {
		return SignResult{}, errors.Wrap(err, "unable to encode envelope")
	}

	return SignResult{
		From:       AddressStr(kp.Address()),
		Signed:     signed,
		TxHash:     hex.EncodeToString(hash[:]),
		Passphrase: n.Passphrase(),
	}, nil
}

// Verify verifies that there is a signature in the envelope by the source
// account (the fee source for fee bump transactions) and that it is valid
// on the current network.
func (s *Signer) Verify(txEnv xdr.TransactionEnvelope) error {
	source := txEnv.SourceAccount()
	if txEnv.IsFeeBump() {
		source = txEnv.FeeBumpAccount()
	}
	addr, err := addressOf(source)
	if err != nil {
		return err
	}
	return s.VerifyFrom(txEnv, addr)
}

// VerifyFrom verifies that signer signed txEnv on the current network.
// Only signatures on the outermost transaction are considered.
func (s *Signer) VerifyFrom(txEnv xdr.TransactionEnvelope, signer AddressStr) error {
	hash, err := s.Hash(txEnv)
	if err != nil {
		return err
	}
	kp, err := keypair.Parse(signer.String())
	if err != nil {
		return err
	}

	sigs := txEnv.Signatures()
	if txEnv.IsFeeBump() {
		sigs = txEnv.FeeBumpSignatures()
	}

	var found bool
	for _, sig := range sigs {
		if sig.Hint != kp.Hint() {
			continue
		}
		if err := kp.Verify(hash[:], sig.Signature); err != nil {
			return errors.Wrap(ErrBadSignature, err.Error())
		}
		found = true
	}

	if !found {
		return ErrNoSignature
	}

	return nil
}

// VerifyEnvelope verifies txEnv against the default registry's network.
func VerifyEnvelope(txEnv xdr.TransactionEnvelope) error {
	return NewSigner(Default()).Verify(txEnv)
}
