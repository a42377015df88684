package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/go-theft-craft/schematic/cmd/codegen/internal/schema"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// maxData is the upper bound of the catch-all range emitted for every block.
const maxData = 255

type Config struct {
	SchemeDir string
	OutFile   string
	Package   string
}

type templateData struct {
	Package string
	Source  string
	Entries []entryTmpl
}

type entryTmpl struct {
	ID      int
	MinData int
	MaxData int
	Name    string
	Display string
}

func Run(cfg Config) error {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	raw, err := os.ReadFile(filepath.Join(cfg.SchemeDir, "blocks.json"))
	if err != nil {
		return fmt.Errorf("read blocks.json: %w", err)
	}
	entries, err := loadEntries(raw)
	if err != nil {
		return fmt.Errorf("parse blocks.json: %w", err)
	}

	td := templateData{
		Package: cfg.Package,
		Source:  filepath.ToSlash(filepath.Join(filepath.Base(cfg.SchemeDir), "blocks.json")),
		Entries: entries,
	}
	if err := renderToFile(tmpl, "catalog.go.tmpl", cfg.OutFile, td); err != nil {
		return fmt.Errorf("generate %s: %w", cfg.OutFile, err)
	}
	fmt.Printf("  generated %s (%d entries)\n", cfg.OutFile, len(entries))
	return nil
}

func renderToFile(tmpl *template.Template, name, outFile string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", outFile, err)
	}
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return nil
}

// loadEntries flattens blocks into catalog entries ordered by id. Each
// variation becomes a single-value range ahead of the block's catch-all.
func loadEntries(raw []byte) ([]entryTmpl, error) {
	blocks, err := schema.LoadJSON[schema.Block](raw)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].ID < blocks[j].ID })

	var entries []entryTmpl
	for _, b := range blocks {
		if b.ID < 0 || b.ID > 0xFFFF {
			return nil, fmt.Errorf("block %q: id %d out of range", b.Name, b.ID)
		}
		for _, v := range b.Variations {
			if v.Metadata < 0 || v.Metadata > maxData {
				return nil, fmt.Errorf("block %q: metadata %d out of range", b.Name, v.Metadata)
			}
			entries = append(entries, entryTmpl{
				ID: b.ID, MinData: v.Metadata, MaxData: v.Metadata,
				Name: b.Name, Display: v.DisplayName,
			})
		}
		entries = append(entries, entryTmpl{
			ID: b.ID, MinData: 0, MaxData: maxData,
			Name: b.Name, Display: b.DisplayName,
		})
	}
	return entries, nil
}
