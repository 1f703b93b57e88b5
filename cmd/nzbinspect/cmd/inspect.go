package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/javi11/nzbinspect/nzb"
	"github.com/javi11/nzbinspect/nzb/nzbfile"
)

func init() {
	inspectCmd := &cobra.Command{
		Use:   "inspect <file.nzb[.gz]>",
		Short: "Parse an NZB file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	inspectCmd.Flags().Bool("json", false, "print the full parsed document as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	n, err := nzbfile.Load(afero.NewOsFs(), args[0])
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	printSummary(cmd, n)
	return nil
}

func printSummary(cmd *cobra.Command, n *nzb.Nzb) {
	w := cmd.OutOrStdout()

	if n.Meta.Title != "" {
		fmt.Fprintf(w, "Title:      %s\n", n.Meta.Title)
	}
	if n.Meta.Category != "" {
		fmt.Fprintf(w, "Category:   %s\n", n.Meta.Category)
	}
	if len(n.Meta.Passwords) > 0 {
		fmt.Fprintf(w, "Passwords:  %s\n", strings.Join(n.Meta.Passwords, ", "))
	}
	if len(n.Meta.Tags) > 0 {
		fmt.Fprintf(w, "Tags:       %s\n", strings.Join(n.Meta.Tags, ", "))
	}

	fmt.Fprintf(w, "Files:      %d\n", len(n.Files))
	fmt.Fprintf(w, "Size:       %s\n", humanSize(n.Size()))

	if main, err := n.MainFile(); err == nil {
		fmt.Fprintf(w, "Main file:  %s (%s)\n", main.Name(), humanSize(main.Size()))
	}

	if n.HasPar2() {
		fmt.Fprintf(w, "PAR2:       %d files, %s (%.1f%%)\n",
			len(n.Par2Files()), humanSize(n.Par2Size()), n.Par2Percentage())
	}

	fmt.Fprintf(w, "RAR:        %v\n", n.HasRar())
	fmt.Fprintf(w, "Obfuscated: %v\n", n.IsObfuscated())
	fmt.Fprintf(w, "Groups:     %s\n", strings.Join(n.Groups(), ", "))
	fmt.Fprintf(w, "Posters:    %s\n", strings.Join(n.Posters(), ", "))
}

func humanSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
