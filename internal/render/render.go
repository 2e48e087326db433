// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     render
// Description: Output of formulas, results and batches as table, JSON, YAML
//              or TOML
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
	"github.com/msto63/rechenwerk/internal/batch"
	"github.com/msto63/rechenwerk/pkg/core/config"
	"github.com/msto63/rechenwerk/pkg/core/health"
	"github.com/msto63/rechenwerk/pkg/core/version"
	"github.com/msto63/rechenwerk/pkg/formula"
	"gopkg.in/yaml.v3"
)

// Options controls the output
type Options struct {
	Format        string // table, json, yaml or toml (default: table)
	Color         bool   // Styled table output
	PrecisionHint int    // Maximum decimals in the table view, 0 for all

	// Renderer styles the table view (default: a renderer for the output
	// stream, which drops colors when it is not a terminal)
	Renderer *lipgloss.Renderer
}

// OptionsFromConfig converts the output section of the configuration
func OptionsFromConfig(cfg config.OutputConfig) Options {
	return Options{
		Format:        cfg.Format,
		Color:         cfg.ColorEnabled(),
		PrecisionHint: cfg.PrecisionHint,
	}
}

// Renderer writes views to an output stream
type Renderer struct {
	out       io.Writer
	format    string
	precision int
	styles    Styles
}

// New creates a renderer. An unknown format is an UNSUPPORTED_FORMAT error.
func New(out io.Writer, opts Options) (*Renderer, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	switch format {
	case "":
		format = config.OutputTable
	case config.OutputTable, config.OutputJSON, config.OutputYAML, config.OutputTOML:
	default:
		return nil, mdwerrors.UnsupportedFormat(mdwerrors.ModuleRender, opts.Format)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(out)
	}
	return &Renderer{
		out:       out,
		format:    format,
		precision: opts.PrecisionHint,
		styles:    NewStyles(renderer, opts.Color),
	}, nil
}

// Format returns the output format in use
func (r *Renderer) Format() string {
	return r.format
}

// Styles returns the table styles in use
func (r *Renderer) Styles() Styles {
	return r.styles
}

// ===============================
// Views
// ===============================

// Entry is one formula in a listing
type Entry struct {
	ID      string `json:"id" yaml:"id"`
	Domain  string `json:"domain" yaml:"domain"`
	Name    string `json:"name" yaml:"name"`
	Summary string `json:"summary" yaml:"summary"`
}

// Listing is the structured form of a formula list
type Listing struct {
	Count    int     `json:"count" yaml:"count"`
	Formulas []Entry `json:"formulas" yaml:"formulas"`
}

// Description is the structured form of a single formula
type Description struct {
	ID       string                 `json:"id" yaml:"id"`
	Domain   string                 `json:"domain" yaml:"domain"`
	Name     string                 `json:"name" yaml:"name"`
	Summary  string                 `json:"summary" yaml:"summary"`
	Inputs   []formula.Field        `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Union    *formula.Union         `json:"union,omitempty" yaml:"union,omitempty"`
	Template map[string]interface{} `json:"template" yaml:"template"`
}

// Report is the structured form of a batch run
type Report struct {
	Summary  batch.Summary   `json:"summary" yaml:"summary"`
	Outcomes []batch.Outcome `json:"outcomes" yaml:"outcomes"`
}

// Describe builds the description of f
func Describe(f formula.Formula) Description {
	return Description{
		ID:       f.ID(),
		Domain:   f.Domain,
		Name:     f.Name,
		Summary:  f.Summary,
		Inputs:   f.Inputs,
		Union:    f.Union,
		Template: f.Template(),
	}
}

// Formulas writes a formula listing
func (r *Renderer) Formulas(formulas []formula.Formula) error {
	listing := Listing{Count: len(formulas), Formulas: make([]Entry, len(formulas))}
	for i, f := range formulas {
		listing.Formulas[i] = Entry{ID: f.ID(), Domain: f.Domain, Name: f.Name, Summary: f.Summary}
	}
	if r.format != config.OutputTable {
		return r.encode(listing)
	}

	rows := make([][]string, len(formulas))
	for i, f := range formulas {
		input := "record"
		if f.Union != nil {
			input = "union:" + f.Union.Discriminant
		}
		rows[i] = []string{f.ID(), input, f.Summary}
	}
	var b strings.Builder
	r.table(&b, []string{"FORMULA", "INPUT", "SUMMARY"}, rows, func(row, col int) lipgloss.Style {
		if col == 0 {
			return r.styles.Value
		}
		return r.styles.Key
	})
	fmt.Fprintf(&b, "\n%s\n", r.styles.Muted.Render(fmt.Sprintf("%d formulas", len(formulas))))
	return r.write(b.String())
}

// Describe writes the summary, input fields and template of f
func (r *Renderer) Describe(f formula.Formula) error {
	d := Describe(f)
	if r.format != config.OutputTable {
		return r.encode(d)
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(d.ID) + "\n")
	b.WriteString(r.styles.Muted.Render(d.Summary) + "\n\n")

	if f.Union == nil {
		b.WriteString(r.styles.Header.Render("Inputs") + "\n")
		r.fieldTable(&b, d.Inputs)
	} else {
		b.WriteString(r.styles.Header.Render("Variants") + " " +
			r.styles.Key.Render("(selected by "+f.Union.Discriminant+")") + "\n")
		for _, name := range f.Union.VariantNames() {
			b.WriteString("\n" + r.styles.Value.Render(name) + "\n")
			r.fieldTable(&b, f.Union.Variants[name])
		}
	}

	template, err := yaml.Marshal(d.Template)
	if err != nil {
		return encodeFailed("yaml", err)
	}
	b.WriteString("\n" + r.styles.Header.Render("Template") + "\n")
	for _, line := range strings.Split(strings.TrimRight(string(template), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return r.write(b.String())
}

func (r *Renderer) fieldTable(b *strings.Builder, fields []formula.Field) {
	var rows [][]string
	var add func(prefix string, fields []formula.Field)
	add = func(prefix string, fields []formula.Field) {
		for _, f := range fields {
			required := "yes"
			if f.Optional {
				required = "no"
			}
			rows = append(rows, []string{prefix + f.Name, f.Kind.String(), required})
			if len(f.Fields) > 0 {
				add(prefix+f.Name+"[].", f.Fields)
			}
		}
	}
	add("", fields)
	r.table(b, []string{"FIELD", "KIND", "REQUIRED"}, rows, func(row, col int) lipgloss.Style {
		return r.styles.Value
	})
}

// Outcome writes a single evaluation. Failures show their status and
// reason instead of a result.
func (r *Renderer) Outcome(o batch.Outcome) error {
	if r.format != config.OutputTable {
		return r.encode(o)
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(o.Formula) + "  " +
		r.styles.Status(string(o.Status)).Render(string(o.Status)) + "\n")

	var rows [][]string
	if o.OK() {
		for _, kv := range flatten(o.Result, r.precision) {
			rows = append(rows, []string{kv.Key, kv.Value})
		}
	} else {
		rows = append(rows, []string{"reason", o.Reason})
		if o.Field != "" {
			rows = append(rows, []string{"field", o.Field})
		}
		rows = append(rows, []string{"code", o.Code})
	}
	r.indentedRows(&b, rows)
	return r.write(b.String())
}

// Batch writes the outcomes of a batch run followed by a summary line
func (r *Renderer) Batch(outcomes []batch.Outcome) error {
	report := Report{Summary: batch.Summarize(outcomes), Outcomes: outcomes}
	if r.format != config.OutputTable {
		return r.encode(report)
	}

	rows := make([][]string, len(outcomes))
	for i, o := range outcomes {
		rows[i] = []string{o.ID, o.Formula, string(o.Status), r.detail(o)}
	}
	var b strings.Builder
	r.table(&b, []string{"ID", "FORMULA", "STATUS", "DETAIL"}, rows, func(row, col int) lipgloss.Style {
		if col == 2 {
			return r.styles.Status(rows[row][2])
		}
		return r.styles.Value
	})

	s := report.Summary
	line := fmt.Sprintf("%d requests: %d ok, %d not computable, %d invalid, %d failed, %d cancelled",
		s.Total, s.OK, s.NotComputable, s.Invalid, s.Failed, s.Cancelled)
	b.WriteString("\n" + r.styles.Muted.Render(line) + "\n")
	return r.write(b.String())
}

// detail is the one line form of an outcome for the batch table
func (r *Renderer) detail(o batch.Outcome) string {
	if !o.OK() {
		return o.Reason
	}
	rows := flatten(o.Result, r.precision)
	parts := make([]string, len(rows))
	for i, kv := range rows {
		parts[i] = kv.Key + "=" + kv.Value
	}
	return strings.Join(parts, " ")
}

// Version writes build information
// Health renders a self check report
func (r *Renderer) Health(report *health.Report) error {
	if r.format != config.OutputTable {
		return r.encode(report)
	}

	rows := make([][]string, len(report.Checks))
	for i, c := range report.Checks {
		rows[i] = []string{c.Name, string(c.Status), c.Message}
	}
	var b strings.Builder
	r.table(&b, []string{"CHECK", "STATUS", "MESSAGE"}, rows, func(row, col int) lipgloss.Style {
		if col == 1 {
			return r.styles.Health(report.Checks[row].Status)
		}
		return r.styles.Value
	})
	b.WriteString("\n" + r.styles.Health(report.Status).Render(string(report.Status)) + "\n")
	return r.write(b.String())
}

func (r *Renderer) Version(info version.Info) error {
	if r.format != config.OutputTable {
		return r.encode(info)
	}
	return r.write(info.String() + "\n")
}

// ===============================
// Encoding
// ===============================

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case config.OutputJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return encodeFailed(r.format, err)
		}
	case config.OutputYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return encodeFailed(r.format, err)
		}
		if err := enc.Close(); err != nil {
			return encodeFailed(r.format, err)
		}
	case config.OutputTOML:
		doc, err := generic(v)
		if err != nil {
			return encodeFailed(r.format, err)
		}
		if err := toml.NewEncoder(r.out).Encode(doc); err != nil {
			return encodeFailed(r.format, err)
		}
	default:
		return mdwerrors.UnsupportedFormat(mdwerrors.ModuleRender, r.format)
	}
	return nil
}

func encodeFailed(format string, err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleRender).
		Operation("encode").
		Messagef("encode %s output", format).
		Cause(err).
		Code(mdwerror.CodeEncodeError).
		Build()
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.out, s); err != nil {
		return mdwerrors.IOFailed(mdwerrors.ModuleRender, "write", "output", err)
	}
	return nil
}

// ===============================
// Table Layout
// ===============================

// table writes a header row, a rule and the rows with columns padded to
// their widest cell. The last column is not padded.
func (r *Renderer) table(b *strings.Builder, headers []string, rows [][]string, style func(row, col int) lipgloss.Style) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, cells := range rows {
		for i, cell := range cells {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	total := 0
	for i, h := range headers {
		b.WriteString(r.styles.Header.Render(pad(h, widths[i], i == len(headers)-1)))
		total += widths[i]
		if i < len(headers)-1 {
			b.WriteString("  ")
			total += 2
		}
	}
	b.WriteString("\n" + r.styles.Muted.Render(strings.Repeat("─", total)) + "\n")

	for ri, cells := range rows {
		for i, cell := range cells {
			b.WriteString(style(ri, i).Render(pad(cell, widths[i], i == len(cells)-1)))
			if i < len(cells)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
}

// indentedRows writes key/value rows below a title line
func (r *Renderer) indentedRows(b *strings.Builder, rows [][]string) {
	width := 0
	for _, kv := range rows {
		if w := lipgloss.Width(kv[0]); w > width {
			width = w
		}
	}
	for _, kv := range rows {
		b.WriteString("  " + r.styles.Key.Render(pad(kv[0], width, false)) + "  " +
			r.styles.Value.Render(kv[1]) + "\n")
	}
}

func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
