package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/born-ml/numerics/internal/serialization"
)

var skipChecksum bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.cplx>",
	Short: "List the tensors and metadata of a .cplx archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := serialization.ReadFile(args[0], serialization.ReadOptions{
			SkipChecksumValidation: skipChecksum,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		h := archive.Header
		fmt.Fprintf(w, "format:    v%d (%s)\n", h.FormatVersion, h.Producer)
		fmt.Fprintf(w, "created:   %s\n", h.CreatedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintf(w, "canonical: %t\n", archive.Flags&serialization.FlagCanonicalize != 0)
		fmt.Fprintf(w, "checksum:  %x\n", archive.Checksum)

		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDTYPE\tSHAPE\tBYTES")
		for _, meta := range h.Tensors {
			fmt.Fprintf(tw, "%s\t%s\t%v\t%d\n", meta.Name, meta.DType, meta.Shape, meta.Size)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if len(h.Metadata) > 0 {
			keys := make([]string, 0, len(h.Metadata))
			for k := range h.Metadata {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(w, "\nMetadata:")
			for _, k := range keys {
				fmt.Fprintf(w, "  %s: %s\n", k, h.Metadata[k])
			}
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&skipChecksum, "skip-checksum", false, "do not verify the data checksum")
	rootCmd.AddCommand(inspectCmd)
}
