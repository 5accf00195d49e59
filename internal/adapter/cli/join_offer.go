package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"escrowctl/internal/core/ports"
)

var (
	joinOfferSeller string
	joinOfferEscrow string
)

var joinOfferCmd = &cobra.Command{
	Use:   "join-offer",
	Short: "Join an existing offer as seller",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		seller, err := a.keys.Load(joinOfferSeller)
		if err != nil {
			return err
		}
		escrow, err := parseAddress(joinOfferEscrow)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		sig, err := a.svc.JoinOffer(ctx, ports.JoinOfferRequest{Seller: seller, Escrow: escrow})
		if err != nil {
			return err
		}

		fmt.Printf("Joined offer successfully! Signature: %s\n", sig)
		return nil
	},
}

func init() {
	joinOfferCmd.Flags().StringVarP(&joinOfferSeller, "seller-keypair", "s", "", "seller keypair file")
	joinOfferCmd.Flags().StringVarP(&joinOfferEscrow, "escrow-account", "e", "", "escrow record address")
	_ = joinOfferCmd.MarkFlagRequired("seller-keypair")
	_ = joinOfferCmd.MarkFlagRequired("escrow-account")
	rootCmd.AddCommand(joinOfferCmd)
}
