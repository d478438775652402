package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/mobilert/debug"
)

func newSymbolicateCmd() *cobra.Command {
	var tablePath string
	var typeName string

	cmd := &cobra.Command{
		Use:   "symbolicate HANDLE...",
		Short: "Translate debug handles into a source stack trace",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handles, err := parseHandles(args)
			if err != nil {
				return err
			}
			table, err := debug.LoadTable(tablePath)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("table", tablePath).
				Int("frames", table.Len()).
				Msg("loaded debug table")
			out := table.SourceDebugString(typeName, handles...)
			if out == "" {
				fmt.Println("no debug info for the given handles")
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "Path to the debug table YAML file")
	cmd.Flags().StringVar(&typeName, "type", "", "Top-level module type name")
	cmd.MarkFlagRequired("table")
	return cmd
}

func newHierarchyCmd() *cobra.Command {
	var tablePath string
	var typeName string

	cmd := &cobra.Command{
		Use:   "hierarchy HANDLE",
		Short: "Print the module hierarchy for a debug handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handles, err := parseHandles(args)
			if err != nil {
				return err
			}
			table, err := debug.LoadTable(tablePath)
			if err != nil {
				return err
			}
			out := table.ModuleHierarchyInfo(handles[0], typeName)
			if out == "" {
				fmt.Println("no debug info for the given handle")
				return nil
			}
			fmt.Println(bold(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "Path to the debug table YAML file")
	cmd.Flags().StringVar(&typeName, "type", "", "Top-level module type name")
	cmd.MarkFlagRequired("table")
	return cmd
}

func parseHandles(args []string) ([]debug.Handle, error) {
	handles := make([]debug.Handle, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid debug handle %q", arg)
		}
		handles = append(handles, debug.Handle(n))
	}
	return handles, nil
}
