package stellarnetwork

import "sync/atomic"

// Registry holds the network an application is currently operating
// against.  It starts out with no network.  Writes always succeed and the
// last one wins.
//
// A Registry is safe for concurrent use, but it only protects its own
// value: switching networks while another goroutine is building or
// signing a transaction is up to the caller to prevent.
type Registry struct {
	current atomic.Value // Network
}

// NewRegistry creates a Registry with no network set.
func NewRegistry() *Registry {
	return &Registry{}
}

// UseTestNetwork makes the test network current.
func (r *Registry) UseTestNetwork() {
	r.Use(TestNetwork)
}

// UsePublicNetwork makes the public network current.
func (r *Registry) UsePublicNetwork() {
	r.Use(PublicNetwork)
}

// Use makes n current.  Passing the zero Network clears the selection.
func (r *Registry) Use(n Network) {
	r.current.Store(n)
}

// Clear removes the current network.
func (r *Registry) Clear() {
	r.Use(Network{})
}

// Current returns the current network.  ok is false if no network is set.
func (r *Registry) Current() (n Network, ok bool) {
	n, _ = r.current.Load().(Network)
	return n, !n.IsZero()
}

// Passphrase returns the passphrase of the current network, or
// ErrNetworkNotConfigured.
func (r *Registry) Passphrase() (string, error) {
	n, ok := r.Current()
	if !ok {
		return "", ErrNetworkNotConfigured
	}
	return n.Passphrase(), nil
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package level
// functions.
func Default() *Registry { return defaultRegistry }

// UseTestNetwork makes the test network current in the default registry.
func UseTestNetwork() { defaultRegistry.UseTestNetwork() }

// UsePublicNetwork makes the public network current in the default registry.
func UsePublicNetwork() { defaultRegistry.UsePublicNetwork() }

// Use makes n current in the default registry.  The zero Network clears it.
func Use(n Network) { defaultRegistry.Use(n) }

// Current returns the default registry's network.
func Current() (Network, bool) { return defaultRegistry.Current() }

// NetworkPassphrase returns the default registry's passphrase.
func NetworkPassphrase() (string, error) { return defaultRegistry.Passphrase() }

// Reset clears the default registry.  Tests that select a network should
// defer it.
func Reset() { defaultRegistry.Clear() }
