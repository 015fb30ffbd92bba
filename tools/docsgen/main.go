// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// docsgen renders one markdown page per auxgate subcommand. Flags come from
// the live command tree; descriptions and examples come from
// <docs>/templates/auxgate.yaml.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/auxgate/internal/command"
	"github.com/tfctl/auxgate/internal/meta"
)

type Config struct {
	Subcommands []Subcommand `yaml:"subcommands"`
}

type Subcommand struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	ID      string
	Usage   string
	Default string
	Env     string
}

type TemplateData struct {
	Subcommand
	Short   string
	Flags   []Flag
	Date    string
	Version string
}

const page = `# auxgate {{ .ID }}

{{ .Short }}

{{ .Description }}

## Flags

| Flag | Environment | Default | Description |
|------|-------------|---------|-------------|
{{- range .Flags }}
| ` + "`--{{ .ID }}`" + ` | {{ .Env }} | {{ .Default }} | {{ .Usage }} |
{{- end }}
{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

` + "```" + `
{{ .Command }}
` + "```" + `
{{ end }}{{ end }}
{{- range .Notes }}
> {{ . }}
{{ end }}
_Generated {{ .Date }} for auxgate {{ .Version }}._
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	var config Config
	if data, err := os.ReadFile(filepath.Join(docs, "templates", "auxgate.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			panic(err)
		}
	}
	extras := map[string]Subcommand{}
	for _, sub := range config.Subcommands {
		extras[sub.ID] = sub
	}

	tmpl := template.Must(template.New("page").Parse(page))
	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0755); err != nil {
		panic(err)
	}

	app := command.NewApp(meta.Meta{}, command.DefaultRunners)
	for _, cmd := range app.Commands {
		sub := extras[cmd.Name]
		sub.ID = cmd.Name

		data := TemplateData{
			Subcommand: sub,
			Short:      cmd.Usage,
			Flags:      flags(cmd),
			Date:       time.Now().Format("January 2, 2006"),
			Version:    getVersion(),
		}

		out := filepath.Join(folder, cmd.Name+".md")
		fmt.Println("Generating", out)
		file, err := os.Create(out)
		if err != nil {
			panic(err)
		}
		if err := tmpl.Execute(file, data); err != nil {
			panic(err)
		}
		file.Close()
	}
}

// flags flattens a command's flags into table rows, sorted by name.
func flags(cmd *cli.Command) []Flag {
	var rows []Flag
	for _, f := range cmd.Flags {
		row := Flag{ID: f.Names()[0]}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			row.Usage = df.GetUsage()
			row.Default = df.GetDefaultText()
			row.Env = strings.Join(df.GetEnvVars(), ", ")
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
