// Package testclient sets up recorded horizon responses for tests.
//
// By default responses are played back from testdata.  Run the tests with
// -live to talk to the test server or -record to refresh testdata.
package testclient

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/keybase/vcr"
)

// HorizonURL is the test network horizon server.
const HorizonURL = "https://horizon-testnet.stellar.org"

var live = flag.Bool("live", false, "use test server, do not update testdata")
var record = flag.Bool("record", false, "use test server, update testdata")

var tvcr *vcr.VCR

// Setup is the primary entry point for testclient.  It returns the http
// getter to hand to code under test and the horizon URL it expects.
func Setup(t *testing.T) (*vcr.VCR, string) {
	tvcr = testVCR(t, *live, *record)
	return tvcr, HorizonURL
}

// SetState changes the directory where the http responses are stored.
// If record is on, it will clear out any existing files in the directory.
func SetState(t *testing.T, name string) {
	dir := filepath.Join("testdata", name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	if *record {
		existing, err := filepath.Glob(filepath.Join(dir, "*.vcr"))
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range existing {
			os.Remove(e)
		}
	}

	tvcr.SetDir(dir)
}

func testVCR(t *testing.T, live, record bool) *vcr.VCR {
	v := vcr.New("testdata")
	if record {
		t.Logf("recording http requests")
		v.Record()
	} else if live {
		t.Logf("live http requests")
		v.Live()
	} else {
		t.Logf("playing recorded http requests")
	}
	return v
}
