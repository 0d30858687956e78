package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/molviz/molviz/pkg/errors"
	"github.com/molviz/molviz/pkg/pipeline"
)

// Sample is a named molecule shipped with the CLI for demos and
// quick experiments.
type Sample struct {
	Name     string
	Notation string
	About    string
}

// samples is the built-in catalog, ordered roughly by complexity.
var samples = []Sample{
	{Name: "methane", Notation: "C", About: "simplest hydrocarbon"},
	{Name: "ethanol", Notation: "CCO", About: "drinking alcohol"},
	{Name: "acetic-acid", Notation: "CC(=O)O", About: "vinegar"},
	{Name: "isobutane", Notation: "CC(C)C", About: "branched alkane"},
	{Name: "cyclohexane", Notation: "C1CCCCC1", About: "six-membered ring"},
	{Name: "benzene", Notation: "c1ccccc1", About: "aromatic ring"},
	{Name: "toluene", Notation: "Cc1ccccc1", About: "methylbenzene"},
	{Name: "pyridine", Notation: "c1ccncc1", About: "aromatic nitrogen heterocycle"},
	{Name: "tnt", Notation: "Cc1c(cc(cc1[N+](=O)[O-])[N+](=O)[O-])[N+](=O)[O-]", About: "trinitrotoluene"},
	{Name: "aspirin", Notation: "CC(=O)Oc1ccccc1C(=O)O", About: "acetylsalicylic acid"},
	{Name: "caffeine", Notation: "Cn1cnc2c1c(=O)n(C)c(=O)n2C", About: "morning fuel"},
	{Name: "ibuprofen", Notation: "CC(C)Cc1ccc(cc1)C(C)C(=O)O", About: "painkiller"},
	{Name: "trans-butene", Notation: "C/C=C/C", About: "double bond geometry"},
	{Name: "l-alanine", Notation: "C[C@@H](N)C(=O)O", About: "chiral amino acid"},
}

// sampleByName looks up a sample, reporting whether it exists.
func sampleByName(name string) (Sample, bool) {
	for _, s := range samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// newSamplesCmd creates the samples command. Without flags it prints
// the catalog; with --pick it opens an interactive picker and renders
// the chosen molecule to a file.
func newSamplesCmd() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List or pick built-in sample molecules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pick {
				return runSamplePicker(cmd)
			}
			listSamples(cmd)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "pick a sample interactively and render it")
	return cmd
}

func listSamples(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, styleTitle.Render("Built-in samples"))
	for _, s := range samples {
		fmt.Fprintf(w, "  %-14s %-40s %s\n",
			styleValue.Render(s.Name), s.Notation, styleDim.Render(s.About))
	}
	fmt.Fprintln(w, styleDim.Render("\nRender one with: molviz render --sample <name>"))
}

// runSamplePicker shows the interactive list and renders the chosen
// sample to <name>.svg in the working directory.
func runSamplePicker(cmd *cobra.Command) error {
	model := NewSampleListModel(samples)
	prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))

	final, err := prog.Run()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "sample picker failed")
	}
	m, ok := final.(SampleListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	logger := loggerFromContext(cmd.Context())
	runner := pipeline.NewRunner(logger)
	result := runner.Run(m.Selected.Notation, pipeline.Options{})
	printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)

	path := m.Selected.Name + ".svg"
	if err := os.WriteFile(path, []byte(result.SVG), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSummary(cmd.ErrOrStderr(), path, result)
	return nil
}
