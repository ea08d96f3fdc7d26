package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rockenman1234/gocpufetch/pkg/config"
	"github.com/rockenman1234/gocpufetch/pkg/cpuinfo"
	"github.com/rockenman1234/gocpufetch/pkg/logo"
	"github.com/rockenman1234/gocpufetch/pkg/render"
	"github.com/spf13/cobra"
)

const version = "0.5.0"

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

type rootCommand struct {
	// flags
	noLogo       bool
	logoOverride string
	license      bool
	completions  string
	timeout      time.Duration
}

func newRootCommand() *cobra.Command {
	var cmd rootCommand

	cobraCmd := &cobra.Command{
		Use:          "gocpufetch",
		Short:        "Display CPU information with a vendor logo",
		Long:         "gocpufetch queries the host machine for CPU model, vendor,\ntopology, cache and frequency information and prints it as text,\noptionally beside a vendor ASCII-art logo.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         cmd.run,
	}

	cobraCmd.Flags().BoolVarP(&cmd.noLogo, "no-logo", "n", false, "Disable logo display")
	cobraCmd.Flags().StringVarP(&cmd.logoOverride, "logo", "l", "", "Override logo display with a specific vendor ("+strings.Join(logo.Vendors(), ", ")+")")
	cobraCmd.Flags().BoolVar(&cmd.license, "license", false, "Display license information")
	cobraCmd.Flags().StringVar(&cmd.completions, "completions", "", "Generate shell completions ("+strings.Join(completionShells, ", ")+")")
	cobraCmd.Flags().DurationVar(&cmd.timeout, "timeout", 5*time.Second, "Time budget for external inventory commands")

	_ = cobraCmd.RegisterFlagCompletionFunc("logo", cobra.FixedCompletions(logo.Vendors(), cobra.ShellCompDirectiveNoFileComp))
	_ = cobraCmd.RegisterFlagCompletionFunc("completions", cobra.FixedCompletions(completionShells, cobra.ShellCompDirectiveNoFileComp))

	return cobraCmd
}

func (cmd *rootCommand) run(cobraCmd *cobra.Command, _ []string) error {
	// Informational flags short-circuit before any CPU query.
	if cmd.completions != "" {
		return printCompletions(cobraCmd, cmd.completions)
	}
	if cmd.license {
		printLicense()
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cobraCmd.Flags().Changed("no-logo") {
		cmd.noLogo = cfg.NoLogo
	}
	if cmd.logoOverride == "" {
		cmd.logoOverride = cfg.Logo
	}

	if cmd.logoOverride != "" && !slices.Contains(logo.Vendors(), strings.ToLower(cmd.logoOverride)) {
		return fmt.Errorf("unknown logo vendor %q, valid vendors: %s", cmd.logoOverride, strings.Join(logo.Vendors(), ", "))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cmd.timeout)
	defer cancel()

	info, err := cpuinfo.Get(ctx)
	if err != nil {
		return fmt.Errorf("error fetching cpu info: %v", err)
	}

	width := render.TerminalWidth()
	if cmd.noLogo {
		render.Plain(os.Stdout, info, width)
		return nil
	}

	vendorKey := info.VendorKey
	if cmd.logoOverride != "" {
		vendorKey = cmd.logoOverride
	}
	lg, ok := logo.Lookup(vendorKey)
	if !ok {
		// No logo for this vendor; display the info alone.
		render.Plain(os.Stdout, info, width)
		return nil
	}

	render.WithLogo(os.Stdout, info, lg, width)
	return nil
}

func printCompletions(cobraCmd *cobra.Command, shell string) error {
	root := cobraCmd.Root()
	switch strings.ToLower(shell) {
	case "bash":
		return root.GenBashCompletionV2(os.Stdout, true)
	case "zsh":
		return root.GenZshCompletion(os.Stdout)
	case "fish":
		return root.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell %q, supported shells: %s", shell, strings.Join(completionShells, ", "))
	}
}

func printLicense() {
	fmt.Println("Copyright (C) 2025 - Present: gocpufetch contributors.")
	fmt.Println("Licensed under the GNU GPLv3: GNU General Public License version 3.")
	fmt.Println("gocpufetch comes with ABSOLUTELY NO WARRANTY.")
	fmt.Println()
	fmt.Println("A copy of the GNU General Public License Version 3 should")
	fmt.Println("have been provided with gocpufetch. If not, you can")
	fmt.Println("find it at: <https://www.gnu.org/licenses/gpl-3.0.html>.")
}
