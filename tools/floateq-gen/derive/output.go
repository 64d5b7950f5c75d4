package derive

import (
	"bytes"
	"go/format"
	"text/template"

	"github.com/antithesishq/floateq/tools/floateq-gen/common"
	"github.com/pkg/errors"
)

type GenInfo struct {
	Header      string
	PackageName string
	FloateqPath string
	VersionText string
	Structs     []*Struct
}

func NewGenInfo(packageName, versionText string, structs []*Struct) *GenInfo {
	return &GenInfo{
		Header:      common.GENERATED_HEADER,
		PackageName: packageName,
		FloateqPath: common.FLOATEQ_MODULE,
		VersionText: versionText,
		Structs:     structs,
	}
}

// Generate renders the derived methods of every struct as a formatted Go
// source file.
func Generate(genInfo *GenInfo) ([]byte, error) {
	tmpl := template.New("derive").Funcs(template.FuncMap{
		"pkg": pkg,
	})
	tmpl, err := tmpl.Parse(getFileText() + getStructText())
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse template")
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, genInfo); err != nil {
		return nil, errors.Wrap(err, "unable to render derived methods")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "generated code does not parse:\n%s", buf.String())
	}
	return src, nil
}

func getFileText() string {
	const text = `{{.Header}}
{{- if .VersionText}}
// {{.VersionText}}
{{- end}}

package {{.PackageName}}
{{if .Structs}}
import "{{.FloateqPath}}"
{{end}}
{{- range .Structs}}{{template "struct" .}}{{end}}`
	return text
}

func getStructText() string {
	const text = `{{define "struct"}}{{$s := .}}
// {{.UlpsEpsilon}} is the ULPs epsilon representation of {{.Name}}.
type {{.UlpsEpsilon}} struct {
{{- range .Fields}}
	{{.Name}} {{.UlpsType}}
{{- end}}
}

// {{.DebugUlpsDiff}} holds the ULPs differences between the fields of two {{.Name}} values.
type {{.DebugUlpsDiff}} struct {
{{- range .Fields}}
	{{.Name}} {{.DiffType}}
{{- end}}
}

var _ {{pkg "FloatEq"}}[{{.Name}}, {{.UlpsEpsilon}}] = {{.Name}}{}
var _ {{pkg "AssertFloatEq"}}[{{.Name}}, {{.UlpsEpsilon}}, {{.DebugUlpsDiff}}] = {{.Name}}{}
{{- if .AllEpsilon}}
var _ {{pkg "FloatEqAll"}}[{{.Name}}, {{.AllEpsilon}}] = {{.Name}}{}
var _ {{pkg "AssertFloatEqAll"}}[{{.Name}}, {{.AllEpsilon}}, {{.UlpsEpsilon}}] = {{.Name}}{}
{{- end}}
{{range .Methods}}
func (a {{$s.Name}}) {{.Name}}({{.Params}}) {{.Result}} {
{{- range .Body}}
	{{.}}
{{- end}}
}
{{end}}
{{- end}}`
	return text
}
