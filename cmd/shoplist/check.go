package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/shoplist/pkg/shoplist"
	"github.com/dmitrymomot/shoplist/pkg/validator"
)

// errRejected makes the command exit non-zero after the failure is printed.
var errRejected = errors.New("item rejected")

func newCheckCmd() *cobra.Command {
	var name, qty string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate an item the way the add form does",
		Example: `  shoplist check --name "Arroz 5" --qty "2 KG"
  shoplist check --name Leite --qty 10k`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			item, err := shoplist.ParseSubmission(name, qty)
			if err != nil {
				verrs := validator.ExtractValidationErrors(err)
				if verrs == nil {
					return err
				}
				for _, field := range verrs.Fields() {
					for _, msg := range verrs.Get(field) {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
					}
				}
				return errRejected
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Name     string `json:"name"`
				Quantity string `json:"quantity"`
			}{item.Name, item.Quantity})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&qty, "qty", "", "quantity: digits with an optional g or kg suffix")
	return cmd
}
