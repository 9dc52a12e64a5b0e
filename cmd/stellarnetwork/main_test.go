package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	snetwork "github.com/stellar/go/network"
	"github.com/stretchr/testify/require"

	"github.com/keybase/stellarnetwork"
)

func TestIDCommand(t *testing.T) {
	tests := []struct {
		arg        string
		passphrase string
	}{
		{"test", snetwork.TestNetworkPassphrase},
		{"public", snetwork.PublicNetworkPassphrase},
		{"Standalone Network ; February 2017", "Standalone Network ; February 2017"},
	}
	for _, test := range tests {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"id", test.arg})
		require.NoError(t, rootCmd.Execute())

		id := snetwork.ID(test.passphrase)
		require.Equal(t, hex.EncodeToString(id[:]), strings.TrimSpace(out.String()))
	}
}

func writeConfig(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "network.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
	return path
}

func runCheckWith(t *testing.T, data string) error {
	defer stellarnetwork.Reset()
	rootCmd.SetArgs([]string{"check", "--config", writeConfig(t, data)})
	return rootCmd.Execute()
}

func TestCheckCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"horizon_version":"fake","network_passphrase":%q}`, snetwork.TestNetworkPassphrase)
	}))
	defer srv.Close()

	err := runCheckWith(t, fmt.Sprintf("network = \"test\"\nhorizon_url = %q\n", srv.URL))
	require.NoError(t, err)

	err = runCheckWith(t, fmt.Sprintf("network = \"public\"\nhorizon_url = %q\n", srv.URL))
	require.Equal(t, stellarnetwork.ErrNetworkMismatch{
		Want: snetwork.PublicNetworkPassphrase,
		Got:  snetwork.TestNetworkPassphrase,
	}, err)

	err = runCheckWith(t, fmt.Sprintf("horizon_url = %q\n", srv.URL))
	require.Equal(t, stellarnetwork.ErrNetworkNotConfigured, err)

	err = runCheckWith(t, "network = \"test\"\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "horizon_url not set")

	rootCmd.SetArgs([]string{"check", "--config", filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, rootCmd.Execute())
}
