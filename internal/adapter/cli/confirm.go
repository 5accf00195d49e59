package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"escrowctl/internal/core/ports"
)

var (
	confirmSeller string
	confirmEscrow string
)

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Confirm delivery as seller, releasing the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		seller, err := a.keys.Load(confirmSeller)
		if err != nil {
			return err
		}
		escrow, err := parseAddress(confirmEscrow)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		sig, err := a.svc.Confirm(ctx, ports.ConfirmRequest{Seller: seller, Escrow: escrow})
		if err != nil {
			return err
		}

		fmt.Printf("Transaction confirmed! Signature: %s\n", sig)
		return nil
	},
}

func init() {
	confirmCmd.Flags().StringVarP(&confirmSeller, "seller-keypair", "s", "", "seller keypair file")
	confirmCmd.Flags().StringVarP(&confirmEscrow, "escrow-account", "e", "", "escrow record address")
	_ = confirmCmd.MarkFlagRequired("seller-keypair")
	_ = confirmCmd.MarkFlagRequired("escrow-account")
	rootCmd.AddCommand(confirmCmd)
}
