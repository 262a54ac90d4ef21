package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
)

// sampleCommand writes the bundled sample season.
func (c *CLI) sampleCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample season file",
		Long: `Write the bundled sample season to stdout, or to --output. The format
follows the output extension (.json or .toml); stdout gets JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				_, err := os.Stdout.Write(dataset.SampleJSON())
				return err
			}
			s, err := dataset.Sample()
			if err != nil {
				return err
			}
			if err := writeSeason(output, s); err != nil {
				return err
			}
			printSuccess("Wrote sample season")
			printFile(output)
			printNextStep("Render a chart", "seasonviz render goal-scorers "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .toml)")
	return cmd
}

// convertCommand re-encodes a season file between JSON and TOML.
func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a season file between JSON and TOML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			if err := writeSeason(args[1], s); err != nil {
				return err
			}
			printSuccess("Converted %s", args[0])
			printFile(args[1])
			return nil
		},
	}
}

// writeSeason encodes s to path in the format named by its extension.
func writeSeason(path string, s *dataset.Season) (err error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := dataset.FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return dataset.Encode(file, s, f)
}
