package derive

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"

	"github.com/antithesishq/floateq/tools/floateq-gen/common"
	"github.com/pkg/errors"
)

type FieldKind int

const (
	FieldFloat FieldKind = iota
	FieldComplex
	FieldDerived
)

type FieldShape int

const (
	ShapeScalar FieldShape = iota
	ShapeArray
	ShapeSlice
)

// Field is one field of a derived struct, classified by what its elements
// are and how they are laid out.
type Field struct {
	Name  string
	Kind  FieldKind
	Shape FieldShape
	// Len is the array length expression of ShapeArray fields.
	Len string
	// Elem is the element type as written in generated code.
	Elem string
	// Float is the float type of FieldFloat elements and of the components
	// of FieldComplex elements.
	Float   string
	Derived *Struct
}

// Struct is a struct type carrying a derive directive.
type Struct struct {
	Directive
	Name     string
	Fields   []*Field
	Position token.Position
}

type sourceFile struct {
	path string
	// floateqName is the name the root package is imported under, empty if
	// the file does not import it.
	floateqName string
}

type typeDecl struct {
	spec *ast.TypeSpec
	doc  []*ast.CommentGroup
	file *sourceFile
}

// Capitalized struct items are accessed outside this file
type Scanner struct {
	fset         *token.FileSet
	logWriter    *common.LogWriter
	PackageName  string
	decls        map[string]*typeDecl
	order        []string
	structs      map[string]*Struct
	FilesScanned int
}

func NewScanner(logWriter *common.LogWriter) *Scanner {
	return &Scanner{
		fset:      token.NewFileSet(),
		logWriter: logWriter,
		decls:     map[string]*typeDecl{},
		structs:   map[string]*Struct{},
	}
}

// ScanFile parses a file of the package. Generated files are skipped.
func (s *Scanner) ScanFile(filePath string) error {
	return s.ScanSource(filePath, nil)
}

// ScanSource parses src, or the file at filePath if src is nil.
func (s *Scanner) ScanSource(filePath string, src any) error {
	if common.IsGeneratedFile(filePath) {
		if s.logWriter.VerboseLevel(2) {
			s.logWriter.Debugf("Skipping generated file %s", filePath)
		}
		return nil
	}
	if s.logWriter.IsVerbose() {
		s.logWriter.Printf("Scanning %s", filePath)
	}

	file, err := parser.ParseFile(s.fset, filePath, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return errors.Wrapf(err, "unable to parse %s", filePath)
	}
	// Output written under another name with -o.
	if ast.IsGenerated(file) {
		if s.logWriter.VerboseLevel(2) {
			s.logWriter.Debugf("Skipping generated file %s", filePath)
		}
		return nil
	}
	if s.PackageName == "" {
		s.PackageName = file.Name.Name
	} else if s.PackageName != file.Name.Name {
		return errors.Errorf("%s: found package %s, expected %s", filePath, file.Name.Name, s.PackageName)
	}

	sf := &sourceFile{path: filePath, floateqName: importName(file)}
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			td := &typeDecl{spec: typeSpec, file: sf}
			if typeSpec.Doc != nil {
				td.doc = append(td.doc, typeSpec.Doc)
			}
			if !genDecl.Lparen.IsValid() && genDecl.Doc != nil {
				td.doc = append(td.doc, genDecl.Doc)
			}
			if prev, ok := s.decls[typeSpec.Name.Name]; ok {
				return errors.Errorf("%s: %s redeclared, previous declaration at %s",
					s.fset.Position(typeSpec.Pos()), typeSpec.Name.Name, s.fset.Position(prev.spec.Pos()))
			}
			s.decls[typeSpec.Name.Name] = td
			s.order = append(s.order, typeSpec.Name.Name)
		}
	}
	s.FilesScanned++
	return nil
}

func importName(file *ast.File) string {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != common.FLOATEQ_MODULE {
			continue
		}
		if imp.Name == nil {
			return common.FLOATEQ_PACKAGE
		}
		if imp.Name.Name == "_" || imp.Name.Name == "." {
			return ""
		}
		return imp.Name.Name
	}
	return ""
}

// Resolve classifies the fields of every struct carrying a derive directive,
// in declaration order.
func (s *Scanner) Resolve() ([]*Struct, error) {
	var derived []*Struct
	for _, name := range s.order {
		td := s.decls[name]
		directive, err := s.directive(td)
		if err != nil {
			return nil, err
		}
		if directive == nil {
			continue
		}
		st := &Struct{
			Directive: *directive,
			Name:      name,
			Position:  s.fset.Position(td.spec.Pos()),
		}
		s.structs[name] = st
		derived = append(derived, st)
	}

	for _, st := range derived {
		if err := s.checkNames(st); err != nil {
			return nil, err
		}
	}
	for _, st := range derived {
		if err := s.resolveFields(st, s.decls[st.Name]); err != nil {
			return nil, err
		}
		if s.logWriter.VerboseLevel(2) {
			s.logWriter.Debugf("Derived %s with %d %s", st.Name, len(st.Fields), common.Pluralize(len(st.Fields), "field"))
		}
	}
	return derived, nil
}

func (s *Scanner) directive(td *typeDecl) (*Directive, error) {
	var found *ast.Comment
	for _, group := range td.doc {
		for _, c := range group.List {
			if !IsDirective(c.Text) {
				continue
			}
			if found != nil {
				return nil, errors.Errorf("%s: more than one `%s` directive on %s",
					s.fset.Position(c.Pos()), common.DIRECTIVE, td.spec.Name.Name)
			}
			found = c
		}
	}
	if found == nil {
		return nil, nil
	}

	pos := s.fset.Position(found.Pos())
	name := td.spec.Name.Name
	if td.spec.TypeParams != nil {
		return nil, errors.Errorf("%s: %s is generic, only non-generic structs can be derived", pos, name)
	}
	if td.spec.Assign.IsValid() {
		return nil, errors.Errorf("%s: %s is an alias, only struct declarations can be derived", pos, name)
	}
	if _, ok := td.spec.Type.(*ast.StructType); !ok {
		return nil, errors.Errorf("%s: %s is not a struct, only structs can be derived", pos, name)
	}
	d, err := ParseDirective(name, found.Text)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: %s", pos, name)
	}
	return d, nil
}

func (s *Scanner) checkNames(st *Struct) error {
	if st.UlpsEpsilon == st.DebugUlpsDiff {
		return errors.Errorf("%s: %s uses %s for both ULPs types", st.Position, st.Name, st.UlpsEpsilon)
	}
	for _, generated := range []string{st.UlpsEpsilon, st.DebugUlpsDiff} {
		if _, ok := s.decls[generated]; ok {
			return errors.Errorf("%s: %s is already declared in package %s", st.Position, generated, s.PackageName)
		}
		for _, other := range s.structs {
			if other != st && (other.UlpsEpsilon == generated || other.DebugUlpsDiff == generated) {
				return errors.Errorf("%s: %s is also generated for %s", st.Position, generated, other.Name)
			}
		}
	}
	if st.AllEpsilon != "" && !s.isFloat(st.AllEpsilon) {
		return errors.Errorf("%s: all_epsilon of %s must be a float type, found %s", st.Position, st.Name, st.AllEpsilon)
	}
	return nil
}

func (s *Scanner) resolveFields(st *Struct, td *typeDecl) error {
	structType := td.spec.Type.(*ast.StructType)
	for _, astField := range structType.Fields.List {
		names := make([]string, 0, len(astField.Names))
		for _, ident := range astField.Names {
			names = append(names, ident.Name)
		}
		if len(names) == 0 {
			names = append(names, embeddedName(astField.Type))
		}

		for _, name := range names {
			pos := s.fset.Position(astField.Pos())
			if name == "_" {
				s.logWriter.Warnf("%s: skipping blank field of %s", pos, st.Name)
				continue
			}
			field, err := s.classify(astField.Type, td.file)
			if err != nil {
				return errors.Wrapf(err, "%s: field %s of %s", pos, name, st.Name)
			}
			if field.Derived == st {
				return errors.Errorf("%s: field %s of %s is recursive", pos, name, st.Name)
			}
			if field.Kind == FieldDerived && st.AllEpsilon != "" && field.Derived.AllEpsilon == "" {
				return errors.Errorf("%s: field %s of %s needs %s to declare all_epsilon", pos, name, st.Name, field.Derived.Name)
			}
			field.Name = name
			st.Fields = append(st.Fields, field)
		}
	}
	return nil
}

func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	}
	return "_"
}

func (s *Scanner) classify(expr ast.Expr, file *sourceFile) (*Field, error) {
	switch t := expr.(type) {
	case *ast.ParenExpr:
		return s.classify(t.X, file)
	case *ast.ArrayType:
		field, err := s.classifyElem(t.Elt, file)
		if err != nil {
			return nil, err
		}
		if t.Len == nil {
			field.Shape = ShapeSlice
			return field, nil
		}
		if _, ok := t.Len.(*ast.Ellipsis); ok {
			return nil, errors.Errorf("unsupported type %s", types.ExprString(expr))
		}
		field.Shape = ShapeArray
		field.Len = types.ExprString(t.Len)
		return field, nil
	}
	return s.classifyElem(expr, file)
}

func (s *Scanner) classifyElem(expr ast.Expr, file *sourceFile) (*Field, error) {
	switch t := expr.(type) {
	case *ast.ParenExpr:
		return s.classifyElem(t.X, file)
	case *ast.Ident:
		if st, ok := s.structs[t.Name]; ok {
			return &Field{Kind: FieldDerived, Elem: t.Name, Derived: st}, nil
		}
		if s.isFloat(t.Name) {
			return &Field{Kind: FieldFloat, Elem: t.Name, Float: t.Name}, nil
		}
	case *ast.IndexExpr:
		if s.isComplex(t.X, file) {
			if arg, ok := t.Index.(*ast.Ident); ok && s.isFloat(arg.Name) {
				elem := common.FLOATEQ_PACKAGE + ".Complex[" + arg.Name + "]"
				return &Field{Kind: FieldComplex, Elem: elem, Float: arg.Name}, nil
			}
		}
	}
	return nil, errors.Errorf("unsupported type %s", types.ExprString(expr))
}

func (s *Scanner) isComplex(expr ast.Expr, file *sourceFile) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok || file.floateqName == "" || sel.Sel.Name != "Complex" {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == file.floateqName
}

// isFloat reports whether name is float32, float64, or a package type whose
// underlying type is one of them.
func (s *Scanner) isFloat(name string) bool {
	for n := len(s.decls) + 1; n > 0; n-- {
		if name == "float32" || name == "float64" {
			return true
		}
		td, ok := s.decls[name]
		if !ok || td.spec.TypeParams != nil {
			return false
		}
		ident, ok := td.spec.Type.(*ast.Ident)
		if !ok {
			return false
		}
		name = ident.Name
	}
	return false
}
