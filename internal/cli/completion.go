package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts. Chart names are
// completed for render from the chart registry.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for seasonviz.

Bash:
  $ source <(seasonviz completion bash)

Zsh:
  $ seasonviz completion zsh > "${fpath[1]}/_seasonviz"

Fish:
  $ seasonviz completion fish > ~/.config/fish/completions/seasonviz.fish

PowerShell:
  PS> seasonviz completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
