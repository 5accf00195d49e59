package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"escrowctl/internal/core/ports"
)

var (
	mutualCancelBuyer  string
	mutualCancelSeller string
	mutualCancelEscrow string
)

var mutualCancelCmd = &cobra.Command{
	Use:   "mutual-cancel",
	Short: "Cancel the escrow with both buyer and seller signing",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		buyer, err := a.keys.Load(mutualCancelBuyer)
		if err != nil {
			return err
		}
		seller, err := a.keys.Load(mutualCancelSeller)
		if err != nil {
			return err
		}
		escrow, err := parseAddress(mutualCancelEscrow)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		sig, err := a.svc.MutualCancel(ctx, ports.MutualCancelRequest{
			Buyer:  buyer,
			Seller: seller,
			Escrow: escrow,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Mutual cancel successful! Signature: %s\n", sig)
		return nil
	},
}

func init() {
	mutualCancelCmd.Flags().StringVarP(&mutualCancelBuyer, "buyer-keypair", "b", "", "buyer keypair file")
	mutualCancelCmd.Flags().StringVarP(&mutualCancelSeller, "seller-keypair", "s", "", "seller keypair file")
	mutualCancelCmd.Flags().StringVarP(&mutualCancelEscrow, "escrow-account", "e", "", "escrow record address")
	_ = mutualCancelCmd.MarkFlagRequired("buyer-keypair")
	_ = mutualCancelCmd.MarkFlagRequired("seller-keypair")
	_ = mutualCancelCmd.MarkFlagRequired("escrow-account")
	rootCmd.AddCommand(mutualCancelCmd)
}
