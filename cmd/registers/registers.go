// Package registers implements the register inspection commands. It is a
// presentation layer over pkg/registers: the core supplies the tree
// descriptors, the commands only draw them.
package registers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xlab/treeprint"

	"github.com/EvilEli/cortex-debug/pkg/registers"
	"github.com/EvilEli/cortex-debug/pkg/registers/prefstore"
	"github.com/EvilEli/cortex-debug/pkg/target"
)

var (
	colorReg      = color.New(color.FgGreen)
	colorValue    = color.New(color.FgWhite, color.Bold)
	colorField    = color.New(color.FgCyan)
	colorHeader   = color.New(color.FgWhite, color.Bold, color.Underline)
	colorFlagSet  = color.New(color.FgGreen, color.Bold)
	colorFlagZero = color.New(color.FgHiBlack)
)

var (
	showSteps  int
	showFields bool
	simSeed    uint32
)

// RegistersCmd is the parent command for the register inspection tools
var RegistersCmd = &cobra.Command{
	Use:     "registers",
	Aliases: []string{"regs"},
	Short:   "Inspect the target's register bank",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the register tree once and exit",
	Long: `Connects to the simulated target, refreshes the register bank and
prints it as a tree. Bit fields are shown for expanded registers, or for
every register with --fields. Display preferences saved by 'registers view'
apply here too.`,
	RunE: runShow,
}

func init() {
	RegistersCmd.AddCommand(showCmd, viewCmd)
	RegistersCmd.PersistentFlags().Uint32Var(&simSeed, "seed", 0xC0DE, "simulated target seed")
	showCmd.Flags().IntVar(&showSteps, "steps", 1, "number of simulated halts before printing")
	showCmd.Flags().BoolVar(&showFields, "fields", false, "show bit fields of every register")
}

// preferencePath returns the preference file location, configurable through
// the 'registers_file' config key
func preferencePath() string {
	if path := viper.GetString("registers_file"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".cortex-debug-registers.yaml"
	}
	return filepath.Join(home, ".cortex-debug-registers.yaml")
}

// newSession builds the registry over a fresh simulated target and performs
// the initial refresh
func newSession(ctx context.Context, steps int) (*registers.Registry, *target.Sim, error) {
	sim := target.NewSim(simSeed)
	for i := 0; i < steps; i++ {
		sim.Step()
	}

	store := prefstore.NewFileStore(preferencePath())
	registry := registers.NewRegistry(sim, store, slog.Default())
	registry.SessionStarted()

	if err := registry.Refresh(ctx); err != nil {
		return nil, nil, err
	}

	return registry, sim, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	registry, _, err := newSession(cmd.Context(), showSteps)
	if err != nil {
		return err
	}

	colorHeader.Println("=== Registers ===")
	fmt.Print(renderTree(registry))

	// show is read-only: terminate without saving so a one-shot dump never
	// clobbers preferences edited interactively
	return nil
}

// renderTree lays the register bank out as an ASCII tree
func renderTree(registry *registers.Registry) string {
	tree := treeprint.New()
	tree.SetValue(colorHeader.Sprint("registers"))

	for _, reg := range registry.Registers() {
		item := reg.TreeItem()
		label := fmt.Sprintf("%s = %s",
			colorReg.Sprint(reg.Name()),
			colorValue.Sprint(reg.CopyValue()))

		if !item.Expandable || (!item.Expanded && !showFields) {
			tree.AddNode(label)
			continue
		}

		branch := tree.AddBranch(label)
		for _, field := range reg.Fields() {
			branch.AddNode(fmt.Sprintf("%s = %s",
				colorField.Sprint(field.Name()),
				fieldValueColor(field).Sprint(field.CopyValue())))
		}
	}

	return tree.String()
}

// fieldValueColor dims cleared single-bit flags so set flags stand out,
// mirroring how the flag line of a CPU state dump is usually drawn
func fieldValueColor(field *registers.Field) *color.Color {
	if field.Width() == 1 {
		if field.Value() != 0 {
			return colorFlagSet
		}
		return colorFlagZero
	}
	return colorValue
}
