package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pendergraft/seiconf/internal/assembler"
	"github.com/pendergraft/seiconf/internal/observability/metrics"
)

func createShowCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarise what the configuration would contain",
		Long: `Summarise the assembled configuration without printing secrets.

Shows the compiler profile, which optional sections are included or skipped
and why, and any warnings.

EXAMPLES:
  seiconf show
  SEITRACE_KEY=... seiconf show --strict
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when SEITRACE_KEY is set without PRIVATE_KEY")
	return cmd
}

func runShow(cmd *cobra.Command, strict bool) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = strict
	}

	logger := setupLogger(cfg, cmd.ErrOrStderr())
	metrics.Init(false, "seiconf")

	res, err := assemble(cmd, cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	creds := credentialsFrom(cfg)
	assembled := res.Config

	fmt.Fprintf(out, "Compiler: %s\n", assembled.Compiler)
	fmt.Fprintf(out, "Status:   %s\n", res.Status)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Credentials:")
	fmt.Fprintf(out, "   %s=%s\n", assembler.EnvPrivateKey, creds.PrivateKey)
	fmt.Fprintf(out, "   %s=%s\n", assembler.EnvSeitraceKey, creds.SeitraceKey)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Sections:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "   SECTION\tSTATE\tNETWORKS")
	if assembled.HasNetworks() {
		names := make([]string, 0, len(assembled.Networks))
		for _, n := range assembled.Networks {
			names = append(names, n.Name)
		}
		fmt.Fprintf(w, "   %s\tincluded\t%s\n", assembler.SectionNetworks, strings.Join(names, ", "))
	}
	if assembled.HasVerification() {
		names := make([]string, 0, len(assembled.Verification))
		for _, v := range assembled.Verification {
			names = append(names, v.NetworkName)
		}
		fmt.Fprintf(w, "   %s\tincluded\t%s\n", assembler.SectionVerification, strings.Join(names, ", "))
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(w, "   %s\tskipped\tset %s to enable\n", s.Section, s.EnvVar)
	}
	w.Flush()

	if len(res.Warnings) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Warnings:")
		for _, warn := range res.Warnings {
			fmt.Fprintf(out, "   ⚠️  %s\n", warn.Message)
		}
	}

	return nil
}
