package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdboyer/calljen/callgen"
	"github.com/sdboyer/calljen/internal/config"
)

func newGenerateCmd() *cobra.Command {
	var (
		manifestPath string
		verify       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write or verify the targets declared in calljen.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.Load(manifestPath)
			if err != nil {
				return err
			}
			log.Debugw("manifest loaded", "path", manifestPath, "targets", len(m.Targets))

			jfs, err := callgen.NewJennyList().GenerateFS(m.Targets...)
			if err != nil {
				return fmt.Errorf("generating targets: %w", err)
			}

			if verify {
				if err := jfs.Verify(cmd.Context(), m.Root); err != nil {
					return fmt.Errorf("generated code is out of date, run `go generate` to update:\n%w", err)
				}
				log.Infow("generated code is up to date", "files", jfs.Len())
				return nil
			}

			if err := jfs.Write(cmd.Context(), m.Root); err != nil {
				return fmt.Errorf("writing generated files: %w", err)
			}
			for _, f := range jfs.AsFiles() {
				log.Debugw("wrote file", "path", f.RelativePath, "bytes", len(f.Data))
			}
			log.Infow("generated files written", "files", jfs.Len(), "root", m.Root)
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "config", "c", config.DefaultPath, "path to the calljen manifest")
	cmd.Flags().BoolVar(&verify, "verify", false, "compare generated output with files on disk instead of writing")
	return cmd
}
