package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/eringen/kotoba"
	"github.com/eringen/kotoba/content"
	"github.com/eringen/kotoba/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	ModuleName  string
	SiteName    string
}

func runNew(name string) error {
	// Derive project directory name from the last path segment.
	dirName := name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		dirName = name[idx+1:]
	}

	if _, err := os.Stat(dirName); err == nil {
		return fmt.Errorf("directory %q already exists", dirName)
	}

	data := scaffoldData{
		ProjectName: dirName,
		ModuleName:  name,
		SiteName:    kotoba.EnvOr("SITE_NAME", toTitle(dirName)),
	}

	fmt.Printf("Creating new kotoba site: %s\n\n", dirName)

	root := "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		// Output path, stripping the .tmpl suffix.
		outPath := filepath.Join(dirName, relPath)
		outPath = strings.TrimSuffix(outPath, ".tmpl")
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		raw, err := fs.ReadFile(scaffold.Templates, path)
		if err != nil {
			return err
		}
		tmpl, err := template.New(relPath).Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", relPath, err)
		}
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := tmpl.Execute(out, data); err != nil {
			return fmt.Errorf("render template %s: %w", relPath, err)
		}
		fmt.Printf("  create %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	// Empty directories for the remaining locales; the sample post only
	// ships in the default locale.
	for _, locale := range content.Locales {
		dir := filepath.Join(dirName, "content", string(locale))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	fmt.Printf(`
Done. Next steps:

  cd %s
  cp .env.example .env   # set SESSION_SECRET
  go mod tidy
  go run .
`, dirName)
	return nil
}

// toTitle turns "my-site" into "My Site" for a default site name.
func toTitle(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
