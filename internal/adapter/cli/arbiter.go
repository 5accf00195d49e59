package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"escrowctl/internal/core/ports"
)

var (
	arbiterConfirmKeypair string
	arbiterConfirmEscrow  string
	arbiterConfirmSeller  string

	arbiterCancelKeypair string
	arbiterCancelEscrow  string
	arbiterCancelBuyer   string
)

var arbiterConfirmCmd = &cobra.Command{
	Use:   "arbiter-confirm",
	Short: "Resolve a funded escrow in the seller's favor as arbiter",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		arbiter, err := a.keys.Load(arbiterConfirmKeypair)
		if err != nil {
			return err
		}
		escrow, err := parseAddress(arbiterConfirmEscrow)
		if err != nil {
			return err
		}
		seller, err := parseAddress(arbiterConfirmSeller)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		sig, err := a.svc.ArbiterConfirm(ctx, ports.ArbiterConfirmRequest{
			Arbiter: arbiter,
			Escrow:  escrow,
			Seller:  seller,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Arbiter confirmed! Signature: %s\n", sig)
		return nil
	},
}

var arbiterCancelCmd = &cobra.Command{
	Use:   "arbiter-cancel",
	Short: "Resolve a funded escrow in the buyer's favor as arbiter",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		arbiter, err := a.keys.Load(arbiterCancelKeypair)
		if err != nil {
			return err
		}
		escrow, err := parseAddress(arbiterCancelEscrow)
		if err != nil {
			return err
		}
		buyer, err := parseAddress(arbiterCancelBuyer)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		sig, err := a.svc.ArbiterCancel(ctx, ports.ArbiterCancelRequest{
			Arbiter: arbiter,
			Escrow:  escrow,
			Buyer:   buyer,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Arbiter canceled! Signature: %s\n", sig)
		return nil
	},
}

func init() {
	arbiterConfirmCmd.Flags().StringVarP(&arbiterConfirmKeypair, "arbiter-keypair", "a", "", "arbiter keypair file")
	arbiterConfirmCmd.Flags().StringVarP(&arbiterConfirmEscrow, "escrow-account", "e", "", "escrow record address")
	arbiterConfirmCmd.Flags().StringVarP(&arbiterConfirmSeller, "seller", "s", "", "seller address receiving the vault")
	_ = arbiterConfirmCmd.MarkFlagRequired("arbiter-keypair")
	_ = arbiterConfirmCmd.MarkFlagRequired("escrow-account")
	_ = arbiterConfirmCmd.MarkFlagRequired("seller")
	rootCmd.AddCommand(arbiterConfirmCmd)

	arbiterCancelCmd.Flags().StringVarP(&arbiterCancelKeypair, "arbiter-keypair", "a", "", "arbiter keypair file")
	arbiterCancelCmd.Flags().StringVarP(&arbiterCancelEscrow, "escrow-account", "e", "", "escrow record address")
	arbiterCancelCmd.Flags().StringVarP(&arbiterCancelBuyer, "buyer", "b", "", "buyer address receiving the refund")
	_ = arbiterCancelCmd.MarkFlagRequired("arbiter-keypair")
	_ = arbiterCancelCmd.MarkFlagRequired("escrow-account")
	_ = arbiterCancelCmd.MarkFlagRequired("buyer")
	rootCmd.AddCommand(arbiterCancelCmd)
}
