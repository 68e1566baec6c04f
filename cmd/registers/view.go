package registers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"github.com/EvilEli/cortex-debug/pkg/registers"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the register tree interactively",
	Long: `Interactive register tree browser.

Keys:
  Enter       - expand/collapse the selected register
  f           - cycle the selected node's format (Auto -> Decimal -> Hex -> Binary)
  c           - show the selected node's copy value in the status bar
  s           - step the simulated target and refresh values
  q           - quit, saving display preferences`,
	RunE: runView,
}

// viewState couples the registry with the tview widgets showing it
type viewState struct {
	registry *registers.Registry
	step     func() error
	app      *tview.Application
	tree     *tview.TreeView
	root     *tview.TreeNode
	status   *tview.TextView
}

func runView(cmd *cobra.Command, args []string) error {
	registry, sim, err := newSession(cmd.Context(), 1)
	if err != nil {
		return err
	}

	v := &viewState{
		registry: registry,
		app:      tview.NewApplication(),
		root:     tview.NewTreeNode("registers").SetColor(tcell.ColorYellow),
		status:   tview.NewTextView().SetDynamicColors(true),
	}
	v.step = func() error {
		sim.Step()
		return registry.DebugStopped(cmd.Context())
	}

	v.tree = tview.NewTreeView().SetRoot(v.root).SetCurrentNode(v.root)
	v.tree.SetBorder(true).SetTitle(" registers ")
	v.tree.SetSelectedFunc(v.onSelect)
	v.tree.SetInputCapture(v.onKey)

	unsubscribe := registry.Subscribe(func(reason registers.ChangeReason) {
		v.setStatus(fmt.Sprintf("[grey]%s", reason))
	})
	defer unsubscribe()

	v.rebuild()
	v.setStatus("Enter: expand/collapse  f: format  c: copy value  s: step  q: quit")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.tree, 0, 1, true).
		AddItem(v.status, 1, 0, false)

	if err := v.app.SetRoot(layout, true).Run(); err != nil {
		return err
	}

	// persists the current expansion and format state
	registry.SessionTerminated()
	return nil
}

// rebuild recreates the tree nodes from the registry. Node references carry
// the entity so key handlers can reach it.
func (v *viewState) rebuild() {
	v.root.ClearChildren()

	for _, reg := range v.registry.Registers() {
		item := reg.TreeItem()
		regNode := tview.NewTreeNode(item.Label).
			SetReference(reg).
			SetSelectable(true).
			SetColor(tcell.ColorGreen).
			SetExpanded(item.Expanded)

		for _, field := range reg.Fields() {
			regNode.AddChild(tview.NewTreeNode(field.TreeItem().Label).
				SetReference(field).
				SetSelectable(true).
				SetColor(tcell.ColorAqua))
		}

		v.root.AddChild(regNode)
	}
}

// refreshLabels re-renders node labels in place, preserving selection
func (v *viewState) refreshLabels() {
	for _, regNode := range v.root.GetChildren() {
		reg, ok := regNode.GetReference().(*registers.Register)
		if !ok {
			continue
		}
		regNode.SetText(reg.TreeItem().Label)

		for _, fieldNode := range regNode.GetChildren() {
			if field, ok := fieldNode.GetReference().(*registers.Field); ok {
				fieldNode.SetText(field.TreeItem().Label)
			}
		}
	}
}

// onSelect toggles expansion of register nodes. The expansion state lives in
// the entity so it ends up in the persisted preferences.
func (v *viewState) onSelect(node *tview.TreeNode) {
	reg, ok := node.GetReference().(*registers.Register)
	if !ok || len(reg.Fields()) == 0 {
		return
	}

	reg.SetExpanded(!reg.Expanded())
	node.SetExpanded(reg.Expanded())
}

func (v *viewState) onKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'q':
		v.app.Stop()
		return nil

	case 'f':
		v.cycleFormat(v.tree.GetCurrentNode())
		return nil

	case 'c':
		v.showCopyValue(v.tree.GetCurrentNode())
		return nil

	case 's':
		if err := v.step(); err != nil {
			v.setStatus(fmt.Sprintf("[red]refresh failed: %v", err))
			return nil
		}
		v.refreshLabels()
		return nil
	}

	return event
}

// cycleFormat advances the explicit format of the selected node
func (v *viewState) cycleFormat(node *tview.TreeNode) {
	if node == nil {
		return
	}

	switch entity := node.GetReference().(type) {
	case *registers.Register:
		entity.SetFormat(entity.Format().Next())
		v.setStatus(fmt.Sprintf("%s format: %s", entity.Name(), formatName(entity.Format())))
	case *registers.Field:
		entity.SetFormat(entity.Format().Next())
		v.setStatus(fmt.Sprintf("%s format: %s", entity.Name(), formatName(entity.Format())))
	default:
		return
	}

	v.refreshLabels()
}

// showCopyValue puts the selected node's label-free value in the status bar
func (v *viewState) showCopyValue(node *tview.TreeNode) {
	if node == nil {
		return
	}

	switch entity := node.GetReference().(type) {
	case *registers.Register:
		v.setStatus(fmt.Sprintf("copy value: %s", entity.CopyValue()))
	case *registers.Field:
		v.setStatus(fmt.Sprintf("copy value: %s", entity.CopyValue()))
	}
}

func (v *viewState) setStatus(text string) {
	v.status.SetText(text)
}

func formatName(f registers.Format) string {
	if f == registers.FormatAuto {
		return "Auto"
	}
	return f.String()
}
