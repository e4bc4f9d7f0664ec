package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ember/internal/lower"
	"ember/internal/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List builtin targets and their extended-real format",
	RunE:  runTargets,
}

func runTargets(cmd *cobra.Command, args []string) error {
	color.NoColor = !useColor(cmd, os.Stdout)
	tripleColor := color.New(color.FgCyan, color.Bold)

	out := cmd.OutOrStdout()
	for _, tgt := range target.Presets() {
		real := lower.ExtendedRealType(tgt)
		fmt.Fprintf(out, "%-28s ptr=%d bytes  f80 -> %s\n",
			tripleColor.Sprint(tgt.Triple()), tgt.PtrSize(), real.LLString())
	}
	return nil
}
