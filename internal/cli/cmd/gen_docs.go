package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/floatpane/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:    "gen-docs",
	Short:  "Generate man pages or markdown from the command tree",
	Hidden: true,
	Long: `Generate documentation from the CLI command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files

Man pages go to ~/.local/share/man/man1/ by default so 'man floatpane' works
right away (run 'mandb' if it does not). Markdown goes to ./docs.`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	var (
		ext      string
		generate func(dir string) error
	)
	switch genDocsFormat {
	case "man":
		ext = ".1"
		generate = func(dir string) error {
			date := time.Now()
			return doc.GenManTree(rootCmd, &doc.GenManHeader{
				Title:   "FLOATPANE",
				Section: "1",
				Source:  "floatpane " + buildInfo.Version,
				Manual:  "Floatpane Manual",
				Date:    &date,
			}, dir)
		}
	case "markdown":
		ext = ".md"
		generate = func(dir string) error { return doc.GenMarkdownTree(rootCmd, dir) }
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	outputDir := genDocsOutputDir
	if outputDir == "" {
		outputDir = "./docs"
		if genDocsFormat == "man" {
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		}
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output: no generation timestamp footer.
	rootCmd.DisableAutoGenTag = true
	if err := generate(outputDir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	fmt.Printf("Generated %s docs in %s\n", genDocsFormat, outputDir)
	matches, _ := filepath.Glob(filepath.Join(outputDir, "floatpane*"+ext))
	for _, m := range matches {
		fmt.Printf("  - %s\n", filepath.Base(m))
	}
	return nil
}
