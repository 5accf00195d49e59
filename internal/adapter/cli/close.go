package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"escrowctl/internal/core/ports"
)

var (
	closeKeypair string
	closeEscrow  string
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close a settled escrow record and reclaim its rent",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		closer, err := a.keys.Load(closeKeypair)
		if err != nil {
			return err
		}
		escrow, err := parseAddress(closeEscrow)
		if err != nil {
			return err
		}

		ctx, cancel := a.invocationContext()
		defer cancel()

		sig, err := a.svc.Close(ctx, ports.CloseRequest{Closer: closer, Escrow: escrow})
		if err != nil {
			return err
		}

		fmt.Printf("Escrow closed! Signature: %s\n", sig)
		return nil
	},
}

func init() {
	closeCmd.Flags().StringVarP(&closeKeypair, "closer-keypair", "c", "", "closer keypair file")
	closeCmd.Flags().StringVarP(&closeEscrow, "escrow-account", "e", "", "escrow record address")
	_ = closeCmd.MarkFlagRequired("closer-keypair")
	_ = closeCmd.MarkFlagRequired("escrow-account")
	rootCmd.AddCommand(closeCmd)
}
