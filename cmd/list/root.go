package list

import (
	"fmt"
	"text/tabwriter"

	"github.com/ValentinKolb/bsamples/cmd/util"
	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/ValentinKolb/bsamples/lib/fixtures"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	listCmdConfig *common.GeneratorConfig
	ListCmd       = &cobra.Command{
		Use:     "list",
		Short:   "List the categories of the catalog",
		Long:    `List every category with its fields, the number of samples per field and the fixture file it is written to.`,
		Args:    cobra.NoArgs,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	util.SetupOnlyFlag(ListCmd)
}

func processConfig(cmd *cobra.Command, _ []string) (err error) {
	listCmdConfig, err = util.ProcessConfig(cmd)
	return err
}

func run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	// nothing is written, a memory fs keeps the real one untouched
	g, err := fixtures.NewGenerator(afero.NewMemMapFs(), *listCmdConfig)
	if err != nil {
		return err
	}
	built, err := g.BuildAll()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, f := range built {
		fmt.Fprintf(w, "%s\t%d samples\t%s\n", f.Name, f.Category.Count(), f.Path)
		for _, field := range f.Category.Fields() {
			s, _ := f.Category.Samples(field)
			fmt.Fprintf(w, "  %s\t%d\t\n", field, s.Len())
		}
	}
	return w.Flush()
}
