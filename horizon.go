package stellarnetwork

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/support/log"
)

// HTTPGetter is an interface for making GET http requests.
type HTTPGetter interface {
	Get(url string) (resp *http.Response, err error)
}

// HorizonRoot fetches the root document of the horizon server at
// horizonURL.
func HorizonRoot(getter HTTPGetter, horizonURL string) (*hProtocol.Root, error) {
	rootURL := strings.TrimRight(horizonURL, "/") + "/"
	resp, err := getter.Get(rootURL)
	if err != nil {
		return nil, errors.Wrap(err, "horizon root request failed")
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading horizon root")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("horizon root %s: status %d", rootURL, resp.StatusCode)
	}

	var root hProtocol.Root
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, errors.Wrap(err, "decoding horizon root")
	}
	return &root, nil
}

// CheckHorizon makes sure the horizon server at horizonURL is running
// network n.
func CheckHorizon(getter HTTPGetter, horizonURL string, n Network) error {
	if n.IsZero() {
		return ErrNetworkNotConfigured
	}
	root, err := HorizonRoot(getter, horizonURL)
	if err != nil {
		return err
	}
	l := log.WithField("horizon", horizonURL).WithField("version", root.HorizonVersion)
	if root.NetworkPassphrase != n.Passphrase() {
		l.WithField("passphrase", root.NetworkPassphrase).Warn("horizon is on a different network")
		return ErrNetworkMismatch{Want: n.Passphrase(), Got: root.NetworkPassphrase}
	}
	l.WithField("network", n.String()).Debug("horizon network matches")
	return nil
}

// CheckHorizon runs CheckHorizon against the current network.
func (r *Registry) CheckHorizon(getter HTTPGetter, horizonURL string) error {
	n, ok := r.Current()
	if !ok {
		return ErrNetworkNotConfigured
	}
	return CheckHorizon(getter, horizonURL, n)
}
