package cmd

import (
	"io"
	"strings"

	"github.com/abdul-hamid-achik/h2curl/packages/core/config"
	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

const completionHelp = `To load completions:

Bash:
  $ source <(h2curl --completion bash)

Zsh:
  $ h2curl --completion zsh > "${fpath[1]}/_h2curl"

Fish:
  $ h2curl --completion fish | source

PowerShell:
  PS> h2curl --completion powershell | Out-String | Invoke-Expression
`

// writeCompletion generates the completion script for shell
func writeCompletion(cmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(w)
	case "zsh":
		return cmd.Root().GenZshCompletion(w)
	case "fish":
		return cmd.Root().GenFishCompletion(w, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(w)
	}
	return usageErrorf("invalid shell %q (choices: %s)", shell, strings.Join(completionShells, ", "))
}

// completeArgs suggests methods for the first positional argument
func completeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return config.Methods, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
