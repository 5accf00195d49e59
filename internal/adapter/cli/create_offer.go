package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"escrowctl/internal/core/ports"
)

var (
	createOfferBuyer   string
	createOfferEscrow  string
	createOfferArbiter string
	createOfferAmount  uint64
)

var createOfferCmd = &cobra.Command{
	Use:   "create-offer",
	Short: "Create a new escrow offer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		buyer, err := a.keys.Load(createOfferBuyer)
		if err != nil {
			return err
		}
		escrow, err := a.keys.Load(createOfferEscrow)
		if err != nil {
			return err
		}
		arbiter, err := parseAddress(createOfferArbiter)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		sig, err := a.svc.CreateOffer(ctx, ports.CreateOfferRequest{
			Buyer:   buyer,
			Escrow:  escrow,
			Arbiter: arbiter,
			Amount:  createOfferAmount,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Offer created successfully! Signature: %s\n", sig)
		return nil
	},
}

func init() {
	createOfferCmd.Flags().StringVarP(&createOfferBuyer, "buyer-keypair", "b", "", "buyer keypair file")
	createOfferCmd.Flags().StringVarP(&createOfferEscrow, "escrow-keypair", "e", "", "fresh escrow record keypair file")
	createOfferCmd.Flags().StringVarP(&createOfferArbiter, "arbiter", "r", "", "arbiter address")
	createOfferCmd.Flags().Uint64VarP(&createOfferAmount, "amount", "m", 0, "escrow amount in lamports")
	_ = createOfferCmd.MarkFlagRequired("buyer-keypair")
	_ = createOfferCmd.MarkFlagRequired("escrow-keypair")
	_ = createOfferCmd.MarkFlagRequired("arbiter")
	_ = createOfferCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(createOfferCmd)
}
