package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confio/mask/contract"
	"github.com/confio/mask/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write JSON schemas for the contract messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}

		docs := map[string]map[string]any{}
		for name, v := range map[string]any{
			"init_msg":       contract.InitMsg{},
			"execute_msg":    contract.ExecuteMsg{},
			"query_msg":      contract.QueryMsg{},
			"owner_response": contract.OwnerResponse{},
		} {
			doc, err := schema.Generate(v)
			if err != nil {
				return fmt.Errorf("generate %s: %w", name, err)
			}
			docs[name] = doc
		}

		if err := schema.WriteAll(out, docs); err != nil {
			return err
		}
		fmt.Printf("wrote %d schemas to %s\n", len(docs), out)
		return nil
	},
}

func init() {
	schemaCmd.Flags().String("out", "schema", "output directory")
	rootCmd.AddCommand(schemaCmd)
}
