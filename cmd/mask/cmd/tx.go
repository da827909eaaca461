package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confio/mask/contract"
	"github.com/confio/mask/types"
)

var fromKey string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the contract, making the signer its owner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, closeStore, err := openRuntime()
		if err != nil {
			return err
		}
		defer closeStore()

		info, err := signerInfo(fromKey)
		if err != nil {
			return err
		}

		if _, err := rt.Instantiate(callEnv(), info, []byte(`{}`)); err != nil {
			return err
		}
		fmt.Printf("initialized, owner is %s\n", fromKey)
		return nil
	},
}

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Execute a contract transaction",
}

var txForwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Forward an opaque message through the contract",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawMsg, err := cmd.Flags().GetString("msg")
		if err != nil {
			return err
		}
		if !json.Valid([]byte(rawMsg)) {
			return fmt.Errorf("--msg must be valid JSON")
		}

		rt, closeStore, err := openRuntime()
		if err != nil {
			return err
		}
		defer closeStore()

		info, err := signerInfo(fromKey)
		if err != nil {
			return err
		}

		payload := contract.ExecuteMsg{
			Forward: &contract.ForwardMsg{Msg: types.NewCosmosMsg([]byte(rawMsg))},
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		res, err := rt.Execute(callEnv(), info, encoded)
		if err != nil {
			return err
		}
		for _, msg := range res.Messages {
			fmt.Printf("forwarded: %s\n", msg.Raw())
		}
		return nil
	},
}

var txTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer contract ownership to a new address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		newOwner, err := cmd.Flags().GetString("owner")
		if err != nil {
			return err
		}
		if newOwner == "" {
			return fmt.Errorf("--owner is required")
		}

		rt, closeStore, err := openRuntime()
		if err != nil {
			return err
		}
		defer closeStore()

		info, err := signerInfo(fromKey)
		if err != nil {
			return err
		}

		payload := contract.ExecuteMsg{
			TransferOwnership: &contract.TransferMsg{Owner: types.HumanAddr(newOwner)},
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		if _, err := rt.Execute(callEnv(), info, encoded); err != nil {
			return err
		}
		fmt.Printf("ownership transferred to %s\n", newOwner)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&fromKey, "from", "", "signing key name")
	initCmd.MarkFlagRequired("from")

	txForwardCmd.Flags().StringVar(&fromKey, "from", "", "signing key name")
	txForwardCmd.Flags().String("msg", "", "JSON message to forward")
	txForwardCmd.MarkFlagRequired("from")
	txForwardCmd.MarkFlagRequired("msg")

	txTransferCmd.Flags().StringVar(&fromKey, "from", "", "signing key name")
	txTransferCmd.Flags().String("owner", "", "new owner address")
	txTransferCmd.MarkFlagRequired("from")
	txTransferCmd.MarkFlagRequired("owner")

	txCmd.AddCommand(txForwardCmd, txTransferCmd)
	rootCmd.AddCommand(initCmd, txCmd)
}
