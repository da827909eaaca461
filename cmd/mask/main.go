// Command mask is the development host for the mask contract: it wires the
// contract runtime to a local store and keyring so the contract can be
// exercised without a chain.
package main

import (
	"os"

	"github.com/confio/mask/cmd/mask/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
