package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"escrowctl/internal/core/ports"
)

var (
	fundBuyer  string
	fundEscrow string
)

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Fund the escrow vault as buyer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		buyer, err := a.keys.Load(fundBuyer)
		if err != nil {
			return err
		}
		escrow, err := parseAddress(fundEscrow)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		sig, err := a.svc.Fund(ctx, ports.FundRequest{Buyer: buyer, Escrow: escrow})
		if err != nil {
			return err
		}

		fmt.Printf("Escrow funded successfully! Signature: %s\n", sig)
		return nil
	},
}

func init() {
	fundCmd.Flags().StringVarP(&fundBuyer, "buyer-keypair", "b", "", "buyer keypair file")
	fundCmd.Flags().StringVarP(&fundEscrow, "escrow-account", "e", "", "escrow record address")
	_ = fundCmd.MarkFlagRequired("buyer-keypair")
	_ = fundCmd.MarkFlagRequired("escrow-account")
	rootCmd.AddCommand(fundCmd)
}
