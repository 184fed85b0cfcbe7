package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdboyer/calljen/callgen"
)

func newProfileCmd(p callgen.Profile) *cobra.Command {
	return &cobra.Command{
		Use:   p.Name,
		Short: fmt.Sprintf("Print %d %s-style wrappers to stdout", p.MaxArgs*p.MaxReturns, p.Style),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debugw("rendering profile",
				"profile", p.Name,
				"style", p.Style.String(),
				"maxArgs", p.MaxArgs,
				"maxReturns", p.MaxReturns,
			)

			w := bufio.NewWriter(cmd.OutOrStdout())
			n, err := p.WriteTo(w)
			if err != nil {
				return err
			}
			if err := w.Flush(); err != nil {
				return err
			}
			log.Debugw("profile written", "profile", p.Name, "bytes", n)
			return nil
		},
	}
}
