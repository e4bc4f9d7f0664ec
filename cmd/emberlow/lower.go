package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ember/internal/lower"
	"ember/internal/target"
	"ember/internal/types"
)

var lowerCmd = &cobra.Command{
	Use:   "lower [flags] [type-expr...]",
	Short: "Lower type expressions for a target",
	Long: `Lower parses type expressions (ptr(i32), arr(4, f32), dyn(u8), vec(4, f32),
complex64, ...) and prints the machine representation each one lowers to.
With a manifest, record names from [records] can be used in expressions; with
no expressions at all, every manifest record is lowered.`,
	RunE: runLower,
}

func init() {
	lowerCmd.Flags().String("triple", "", "target triple (default from manifest, else x86_64-linux-gnu)")
	lowerCmd.Flags().String("manifest", "", "path to a lower.toml manifest")
	lowerCmd.Flags().String("emit", "text", "output format (text|msgpack)")
}

func runLower(cmd *cobra.Command, args []string) error {
	triple, err := cmd.Flags().GetString("triple")
	if err != nil {
		return fmt.Errorf("failed to get triple flag: %w", err)
	}
	manifestPath, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return fmt.Errorf("failed to get manifest flag: %w", err)
	}
	emit, err := cmd.Flags().GetString("emit")
	if err != nil {
		return fmt.Errorf("failed to get emit flag: %w", err)
	}
	if emit != "text" && emit != "msgpack" {
		return fmt.Errorf("unknown emit format: %s", emit)
	}

	var manifest *Manifest
	if manifestPath != "" {
		if manifest, err = loadManifest(manifestPath); err != nil {
			return err
		}
	}

	if triple == "" && manifest != nil {
		triple = manifest.Target.Triple
	}
	if triple == "" {
		triple = "x86_64-linux-gnu"
	}
	tgt, err := target.Parse(triple)
	if err != nil {
		return err
	}

	in := types.NewInterner()
	records, err := manifest.registerRecords(in)
	if err != nil {
		return err
	}

	exprs := args
	if len(exprs) == 0 {
		for name := range records {
			exprs = append(exprs, name)
		}
		sort.Strings(exprs)
	}
	if len(exprs) == 0 {
		return fmt.Errorf("nothing to lower: pass type expressions or a manifest with records")
	}

	l := lower.New(tgt, in)
	entries := make([]SnapshotEntry, 0, len(exprs))
	for _, expr := range exprs {
		id, err := parseTypeExpr(in, records, expr)
		if err != nil {
			return err
		}
		lw := l.Slot(id, true)
		entries = append(entries, SnapshotEntry{
			Expr: expr,
			Kind: lw.Kind.String(),
			LLVM: lw.LL.LLString(),
		})
	}

	if emit == "msgpack" {
		return writeSnapshot(cmd.OutOrStdout(), &Snapshot{
			Schema:  snapshotSchemaVersion,
			Triple:  tgt.Triple(),
			Entries: entries,
		})
	}

	exprColor := color.New(color.FgCyan)
	kindColor := color.New(color.FgYellow)
	color.NoColor = !useColor(cmd, os.Stdout)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "target: %s\n", tgt.Triple())
	for _, e := range entries {
		fmt.Fprintf(out, "%s -> %s  (%s)\n", exprColor.Sprint(e.Expr), e.LLVM, kindColor.Sprint(e.Kind))
	}
	return nil
}
