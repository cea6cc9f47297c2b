package main

import (
	render "Canopy/internal/render"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	templateOut  string
	templateMeta render.Meta
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Printable PDF cutting template",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, sys, err := compute()
		if err != nil {
			return err
		}
		printWarnings(cmd.ErrOrStderr(), s)
		if err := writeOutput(templateOut, func(w io.Writer) error {
			return render.CuttingTemplatePDF(w, s, sys, templateMeta)
		}); err != nil {
			return err
		}
		if templateOut != "-" {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", templateOut)
		}
		return nil
	},
}

func init() {
	f := templateCmd.Flags()
	f.StringVarP(&templateOut, "out", "o", "cutting-template.pdf", "output file, - for stdout")
	f.StringVar(&templateMeta.Project, "project", "", "project name")
	f.StringVar(&templateMeta.Author, "author", "", "author")
	f.StringVar(&templateMeta.Title, "title", "", "document title")
	f.StringVar(&templateMeta.Notes, "notes", "", "free text notes")
	rootCmd.AddCommand(templateCmd)
}
