//nolint
package version

import (
	"fmt"
	"strings"
)

// Set using ldflags.
var (
	GitCommit         string
	CosmosRelease     string
	TendermintRelease string
)

const NodeVersion = "0.1.0"

// Version describes this build, one "name: value" pair per known component.
var Version = describe()

func describe() string {
	parts := []string{fmt.Sprintf("UA Chain Release: %s", NodeVersion)}
	for _, c := range []struct{ name, value string }{
		{"UA Chain Commit", GitCommit},
		{"Cosmos Release", CosmosRelease},
		{"Tendermint Release", TendermintRelease},
	} {
		if c.value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", c.name, c.value))
		}
	}
	return strings.Join(parts, "; ") + ";"
}
