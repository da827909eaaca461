package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confio/mask/contract"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query contract state",
}

var queryOwnerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Show the current contract owner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, closeStore, err := openRuntime()
		if err != nil {
			return err
		}
		defer closeStore()

		data, err := rt.Query(callEnv(), []byte(`{"owner":{}}`))
		if err != nil {
			return err
		}

		var resp contract.OwnerResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return err
		}
		fmt.Println(resp.Owner)
		return nil
	},
}

func init() {
	queryCmd.AddCommand(queryOwnerCmd)
	rootCmd.AddCommand(queryCmd)
}
