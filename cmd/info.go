package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"nifty-filter/internal/errors"
	"nifty-filter/internal/network"
)

// interfaceLister is replaced in tests.
var interfaceLister = func() ([]network.InterfaceInfo, error) {
	return network.NewEnumerator().Interfaces()
}

func newInfoCmd() *cobra.Command {
	info := &cobra.Command{
		Use:   "info",
		Short: "Show host information",
	}

	var format string
	interfaces := &cobra.Command{
		Use:   "interfaces",
		Short: "List network interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := interfaceLister()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if format == "" {
				format = defaultFormat(out)
			}
			return writeInterfaces(out, infos, format)
		},
	}
	interfaces.Flags().StringVar(&format, "format", "", "output format: table, json or yaml (default table on a terminal, json otherwise)")

	info.AddCommand(interfaces)
	return info
}

func defaultFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "table"
	}
	return "json"
}

func writeInterfaces(w io.Writer, infos []network.InterfaceInfo, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml":
		data, err := yaml.Marshal(infos)
		if err != nil {
			return errors.Wrap(err, errors.KindInternal, "failed to encode interfaces")
		}
		_, err = w.Write(data)
		return err
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTYPE\tSTATUS\tMTU\tMAC\tIPV4\tHARDWARE\tMANAGED")
		for _, i := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				i.Name, i.Type, i.Status, i.MTU, orDash(i.MAC), orDash(i.FirstIPv4()), orDash(i.Hardware),
				strconv.FormatBool(i.Type.IsManaged()))
		}
		return tw.Flush()
	}
	return errors.Errorf(errors.KindValidation, "invalid format: %q (must be one of: table, json, yaml)", format)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
