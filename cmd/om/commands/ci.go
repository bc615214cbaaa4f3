package commands

import (
	"github.com/juspay/omnix-sub000/internal/app"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

const defaultFlake = "."

func (c *CLI) newCICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ci",
		Short: "Build and check every subflake of a flake",
	}
	cmd.AddCommand(c.newRunCmd())
	cmd.AddCommand(c.newMatrixCmd())
	return cmd
}

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flake] [-- build-args...]",
		Short: "Run the CI pipeline of every subflake",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flake, buildArgs, err := splitArgs(args, cmd.ArgsLenAtDash())
			if err != nil {
				return err
			}

			on, _ := cmd.Flags().GetString("on")
			copyInputs, _ := cmd.Flags().GetBool("copy-inputs")
			copyOutputs, _ := cmd.Flags().GetBool("copy-outputs")
			systems, _ := cmd.Flags().GetString("systems")
			outLink, _ := cmd.Flags().GetString("out-link")
			noLink, _ := cmd.Flags().GetBool("no-link")
			allDeps, _ := cmd.Flags().GetBool("include-all-dependencies")
			allowEmpty, _ := cmd.Flags().GetBool("allow-empty-selection")

			return c.app.RunCI(cmd.Context(), app.RunOptions{
				Flake:               flake,
				Systems:             systems,
				OutLink:             outLink,
				NoLink:              noLink,
				BuildArgs:           buildArgs,
				IncludeAllDeps:      allDeps,
				AllowEmptySelection: allowEmpty,
				On:                  on,
				CopyInputs:          copyInputs,
				CopyOutputs:         copyOutputs,
			})
		},
	}
	cmd.Flags().String("on", "", "Run the build on this ssh host")
	cmd.Flags().Bool("copy-inputs", false, "Copy every flake input to the remote host")
	cmd.Flags().Bool("copy-outputs", false, "Copy every built output back from the remote host")
	cmd.Flags().String("systems", "", "Systems to build for: a comma separated list or a flake URL")
	cmd.Flags().StringP("out-link", "o", domain.DefaultOutLink, "Symlink to the run results")
	cmd.Flags().Bool("no-link", false, "Do not create the results symlink")
	cmd.Flags().Bool("include-all-dependencies", false, "Record the full dependency closure of every output")
	cmd.Flags().Bool("allow-empty-selection", false, "Do not fail when the selected subflake does not exist")
	cmd.MarkFlagsMutuallyExclusive("out-link", "no-link")
	return cmd
}

func (c *CLI) newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gh-matrix [flake]",
		Short: "Print the GitHub Actions job matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flake := defaultFlake
			if len(args) == 1 {
				flake = args[0]
			}
			systems, _ := cmd.Flags().GetString("systems")
			allowEmpty, _ := cmd.Flags().GetBool("allow-empty-selection")

			return c.app.Matrix(cmd.Context(), app.MatrixOptions{
				Flake:               flake,
				Systems:             systems,
				AllowEmptySelection: allowEmpty,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("systems", "", "Systems of the matrix: a comma separated list or a flake URL")
	cmd.Flags().Bool("allow-empty-selection", false, "Print an empty matrix when the selected subflake does not exist")
	_ = cmd.MarkFlagRequired("systems")
	return cmd
}

// splitArgs separates the flake reference from the build arguments that
// follow "--". dash is -1 when there is no "--".
func splitArgs(args []string, dash int) (string, []string, error) {
	positional := args
	var rest []string
	if dash >= 0 {
		positional, rest = args[:dash], args[dash:]
	}

	switch len(positional) {
	case 0:
		return defaultFlake, rest, nil
	case 1:
		return positional[0], rest, nil
	default:
		return "", nil, zerr.With(zerr.New("expected at most one flake reference"), "args", positional)
	}
}
