package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/rshade/esgfocus/internal/emissions"
	"github.com/rshade/esgfocus/internal/report"
)

// DocumentTitlePrefix starts the document heading; the company name follows.
const DocumentTitlePrefix = "GRI ESG Report – "

const documentTemplate = `# {{.Title}}

Reporting period: {{.Period}}

Frameworks: {{join .Frameworks ", "}}

## Material Topic Narratives
{{range .Topics}}
### {{.Name}}
{{if .Narrative}}
{{.Narrative}}
{{end}}{{with .Entry.Stakeholders}}
- Stakeholders: {{.}}{{end}}{{with .Entry.Risks}}
- Risks: {{.}}{{end}}{{with .Entry.Opportunities}}
- Opportunities: {{.}}{{end}}{{with .Entry.KPIs}}
- KPIs: {{join . ", "}}{{end}}
{{else}}
_No material topics selected._
{{end}}
## Environmental KPIs
{{range .Environmental}}
- {{.Name}}: {{.Value}}{{end}}

### Scope 3 Breakdown

| Category | Quantity | Factor | Emissions |
|---|---:|---:|---:|
{{range .Scope3}}| {{cell .Category}} | {{plain .Quantity}} | {{plain .Factor}} | {{fixed2 .Emissions}} |
{{end}}
## Social KPIs
{{range .Social}}
- {{.Name}}: {{.Value}}{{end}}

## Governance KPIs
{{range .Governance}}
- {{.Name}}: {{.Value}}{{end}}
{{with .Equivalency}}
_{{.}}_
{{end}}
_Generated {{.Created}}_
`

//nolint:gochecknoglobals // Parsed once; templates are safe for concurrent use.
var docTmpl = template.Must(template.New("document").Funcs(template.FuncMap{
	"join":   strings.Join,
	"plain":  emissions.FormatPlain,
	"fixed2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"cell":   escapeCell,
}).Parse(documentTemplate))

type docTopic struct {
	Name      string
	Narrative string
	Entry     struct {
		Stakeholders  string
		Risks         string
		Opportunities string
		KPIs          []string
	}
}

type docKPI struct {
	Name  string
	Value string
}

type docRow struct {
	Category  string
	Quantity  float64
	Factor    float64
	Emissions float64
}

type documentView struct {
	Title         string
	Period        string
	Frameworks    []string
	Topics        []docTopic
	Environmental []docKPI
	Scope3        []docRow
	Social        []docKPI
	Governance    []docKPI
	Equivalency   string
	Created       string
}

// RenderDocument writes rec as a Markdown report: a title, one section per
// selected topic with its narrative, environmental KPIs, the Scope 3 table in
// factor-table order, then social and governance KPIs.
func RenderDocument(w io.Writer, rec *report.Record) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrRenderFailure)
	}
	var buf bytes.Buffer
	if err := docTmpl.Execute(&buf, newDocumentView(rec)); err != nil {
		return fmt.Errorf("%w: executing document template: %w", ErrRenderFailure, err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: writing document: %w", ErrRenderFailure, err)
	}
	return nil
}

// DocumentString renders rec with RenderDocument and returns the text.
func DocumentString(rec *report.Record) (string, error) {
	var sb strings.Builder
	if err := RenderDocument(&sb, rec); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func newDocumentView(rec *report.Record) documentView {
	v := documentView{
		Title:         DocumentTitlePrefix + rec.Company,
		Period:        rec.Period,
		Frameworks:    rec.Frameworks,
		Environmental: kpiList(rec.Environmental, report.EnvironmentalKeys()),
		Social:        kpiList(rec.Social, report.SocialKeys()),
		Governance:    kpiList(rec.Governance, report.GovernanceKeys()),
		Created:       rec.Created.Format("2006-01-02 15:04:05 MST"),
	}

	// Topics with a narrative but no entry still get a section.
	names := rec.TopicOrder()
	for _, n := range rec.NarrativeOrder() {
		if _, ok := rec.Topics[n]; !ok {
			names = append(names, n)
		}
	}
	for _, name := range names {
		t := docTopic{Name: name, Narrative: rec.Narratives[name]}
		e := rec.Topics[name]
		t.Entry.Stakeholders = e.Stakeholders
		t.Entry.Risks = e.Risks
		t.Entry.Opportunities = e.Opportunities
		t.Entry.KPIs = e.KPIs
		v.Topics = append(v.Topics, t)
	}

	for _, r := range rec.Scope3Details {
		v.Scope3 = append(v.Scope3, docRow{
			Category:  r.Category(),
			Quantity:  r.Quantity(),
			Factor:    r.Factor(),
			Emissions: r.Emissions(),
		})
	}

	if eq, err := emissions.Equivalencies(rec.TotalEmissions()); err == nil && !eq.IsEmpty {
		v.Equivalency = fmt.Sprintf("Total %s. %s.", emissions.FormatTonnes(rec.TotalEmissions()), eq.DisplayText)
	}
	return v
}

func kpiList(m map[string]float64, preferred []string) []docKPI {
	keys := report.OrderedKeys(m, preferred)
	out := make([]docKPI, 0, len(keys))
	for _, k := range keys {
		out = append(out, docKPI{Name: k, Value: emissions.FormatPlain(m[k])})
	}
	return out
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
