package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/hypercube/pkg/io"
	"github.com/matzehuels/hypercube/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for hypercube.

Bash:
  $ source <(hypercube completion bash)

Zsh:
  $ hypercube completion zsh > "${fpath[1]}/_hypercube"

Fish:
  $ hypercube completion fish > ~/.config/fish/completions/hypercube.fish

PowerShell:
  PS> hypercube completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
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

// documentExtensions lists the file extensions a document can be read from.
func documentExtensions() []string {
	exts := make([]string, 0, len(pkgio.Formats)+1)
	for _, f := range pkgio.Formats {
		exts = append(exts, string(f))
	}
	return append(exts, "yml")
}

// completeDocument completes the single document argument of a command.
func completeDocument(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return documentExtensions(), cobra.ShellCompDirectiveFilterFileExt
}

// registerPartitionFlagCompletions completes --strategy, --merge and, when
// present, --format.
func registerPartitionFlagCompletions(cmd *cobra.Command) {
	noFile := cobra.ShellCompDirectiveNoFileComp
	_ = cmd.RegisterFlagCompletionFunc("strategy", cobra.FixedCompletions([]string{"greedy", "guillotine"}, noFile))
	_ = cmd.RegisterFlagCompletionFunc("merge", cobra.FixedCompletions([]string{"content", "rule"}, noFile))
	if cmd.Flags().Lookup("format") != nil {
		_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.FormatNames(), noFile))
	}
}
