package stellarnetwork

import (
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/stellar/go/support/log"
)

// Config selects a network from a toml file:
//
//	network = "test"
//	horizon_url = "https://horizon-testnet.stellar.org"
//
// A custom network is selected with passphrase instead of network.
type Config struct {
	Name       string `toml:"network"`
	Passphrase string `toml:"passphrase"`
	HorizonURL string `toml:"horizon_url"`
}

// ParseConfig decodes a toml config.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, errors.Wrap(err, "invalid network config")
	}
	return &c, nil
}

// LoadConfig reads and decodes the toml config at path.
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading network config %s", path)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.WithField("path", path).WithField("network", c.Name).Debug("loaded network config")
	return c, nil
}

// Network returns the network the config selects.  A config that selects
// nothing returns the zero Network.
func (c *Config) Network() (Network, error) {
	switch {
	case c.Name != "" && c.Passphrase != "":
		return Network{}, ErrConfigConflict
	case c.Name != "":
		return Named(c.Name)
	case c.Passphrase != "":
		return New(c.Passphrase)
	}
	return Network{}, nil
}

// Apply makes the configured network current in r.  A config without a
// network clears r.
func (c *Config) Apply(r *Registry) error {
	n, err := c.Network()
	if err != nil {
		return err
	}
	r.Use(n)
	return nil
}
