package cmd

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/confio/mask/address"
	"github.com/confio/mask/types"
)

// key is one on-disk keyring entry
type key struct {
	Name    string              `json:"name"`
	Public  ed25519.PublicKey   `json:"public"`
	Private ed25519.PrivateKey  `json:"private"`
	Address types.CanonicalAddr `json:"address"`
}

func (k key) human() (types.HumanAddr, error) {
	return addressCodec.HumanAddress(k.Address)
}

func keysDir() string {
	return filepath.Join(homeDir(), "keys")
}

func keyPath(name string) string {
	return filepath.Join(keysDir(), name+".json")
}

func loadKey(name string) (key, error) {
	data, err := os.ReadFile(keyPath(name))
	if err != nil {
		return key{}, fmt.Errorf("key %q not found (try 'mask keys add %s')", name, name)
	}
	var k key
	if err := json.Unmarshal(data, &k); err != nil {
		return key{}, fmt.Errorf("key %q is corrupt: %w", name, err)
	}
	return k, nil
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the local keyring",
}

var keysAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Generate a new ed25519 key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, err := os.Stat(keyPath(name)); err == nil {
			return fmt.Errorf("key %q already exists", name)
		}

		pub, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return fmt.Errorf("generate key: %w", err)
		}
		addr, err := address.Derive(pub)
		if err != nil {
			return fmt.Errorf("derive address: %w", err)
		}

		k := key{Name: name, Public: pub, Private: priv, Address: addr}
		data, err := json.MarshalIndent(k, "", "  ")
		if err != nil {
			return err
		}
		if err := os.MkdirAll(keysDir(), 0o700); err != nil {
			return err
		}
		if err := os.WriteFile(keyPath(name), data, 0o600); err != nil {
			return err
		}

		human, err := k.human()
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", name, human)
		return nil
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List keyring entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(keysDir())
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("keyring is empty")
				return nil
			}
			return err
		}

		var names []string
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".json") {
				names = append(names, strings.TrimSuffix(e.Name(), ".json"))
			}
		}
		sort.Strings(names)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Address")
		for _, name := range names {
			k, err := loadKey(name)
			if err != nil {
				return err
			}
			human, err := k.human()
			if err != nil {
				return err
			}
			table.Append(name, string(human))
		}
		table.Render()
		return nil
	},
}

var keysShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one key's addresses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := loadKey(args[0])
		if err != nil {
			return err
		}
		human, err := k.human()
		if err != nil {
			return err
		}
		fmt.Printf("name:      %s\n", k.Name)
		fmt.Printf("address:   %s\n", human)
		fmt.Printf("canonical: %s\n", k.Address)
		return nil
	},
}

func init() {
	keysCmd.AddCommand(keysAddCmd, keysListCmd, keysShowCmd)
	rootCmd.AddCommand(keysCmd)
}
