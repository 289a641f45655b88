package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/statloom/statloom-cli/internal/describe"
	"github.com/statloom/statloom-cli/internal/report"
)

var (
	dsShowDescribe bool
	dsShowOutput   string
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage saved dataset snapshots",
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved datasets, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		snaps, err := datasetStore().List()
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Println("(no saved datasets)")
			return nil
		}
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"ID", "Name", "Source", "Points", "Created"})
		for _, s := range snaps {
			tbl.AppendRow(table.Row{shortID(s.ID), s.Name, s.Source, len(s.Values), s.CreatedAt.Format("2006-01-02 15:04:05")})
		}
		tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d datasets", len(snaps))})
		fmt.Println(tbl.Render())
		return nil
	},
}

var datasetsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved dataset, or describe it with --describe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := datasetStore().Load(args[0])
		if err != nil {
			return err
		}
		if !dsShowDescribe {
			fmt.Print(formatValues(snap.Values))
			return nil
		}
		a, err := describe.New(snap.Values)
		if err != nil {
			return err
		}
		rep := report.Build(a, snap.Name)
		out, err := renderReport(rep, dsShowOutput)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var datasetsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := datasetStore().Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted dataset %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsShowCmd)
	datasetsCmd.AddCommand(datasetsRmCmd)

	datasetsShowCmd.Flags().BoolVar(&dsShowDescribe, "describe", false, "describe the dataset instead of printing values")
	datasetsShowCmd.Flags().StringVarP(&dsShowOutput, "output", "o", "", "output format with --describe: markdown|yaml|table")
}
