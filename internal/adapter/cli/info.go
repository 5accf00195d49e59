package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoEscrow string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the decoded escrow record",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		escrow, err := parseAddress(infoEscrow)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		rec, err := a.svc.Info(ctx, escrow)
		if err != nil {
			return err
		}

		fmt.Println("Escrow Information:")
		fmt.Println("====================")
		fmt.Printf("State: %s\n", rec.State)
		fmt.Printf("Amount: %d lamports\n", rec.Amount)
		fmt.Printf("Buyer: %s\n", rec.Buyer)
		fmt.Printf("Seller: %s\n", rec.Seller)
		fmt.Printf("Arbiter: %s\n", rec.Arbiter)
		fmt.Printf("Vault Bump: %d\n", rec.VaultBump)
		fmt.Println("====================")
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoEscrow, "escrow-account", "e", "", "escrow record address")
	_ = infoCmd.MarkFlagRequired("escrow-account")
	rootCmd.AddCommand(infoCmd)
}
