package derive

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/antithesishq/floateq/tools/floateq-gen/common"
	"github.com/pkg/errors"
)

const directivePrefix = "//" + common.DIRECTIVE

const (
	paramUlpsEpsilon   = "ulps_epsilon"
	paramDebugUlpsDiff = "debug_ulps_diff"
	paramAllEpsilon    = "all_epsilon"
)

// Directive holds the parameters of a //floateq:derive comment.
type Directive struct {
	UlpsEpsilon   string
	DebugUlpsDiff string
	AllEpsilon    string
}

// IsDirective reports whether a comment line is a derive directive.
func IsDirective(text string) bool {
	if !strings.HasPrefix(text, directivePrefix) {
		return false
	}
	rest := text[len(directivePrefix):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// ParseDirective reads the parameters of the directive text found on the
// declaration of typeName.
func ParseDirective(typeName, text string) (*Directive, error) {
	if !IsDirective(text) {
		return nil, errors.Errorf("%q is not a `%s` directive", text, common.DIRECTIVE)
	}

	d := &Directive{}
	seen := map[string]bool{}
	for _, param := range strings.Fields(text[len(directivePrefix):]) {
		name, value, found := strings.Cut(param, "=")
		if !found || name == "" || value == "" {
			return nil, errors.Errorf("Expected `name=Type` in `%s`, found `%s`.", common.DIRECTIVE, param)
		}
		if seen[name] {
			return nil, errors.Errorf("Duplicate parameter `%s` in `%s`.", name, common.DIRECTIVE)
		}
		seen[name] = true
		if !token.IsIdentifier(value) {
			return nil, errors.Errorf("`%s` is not a valid type name for `%s`.", value, name)
		}

		switch name {
		case paramUlpsEpsilon:
			d.UlpsEpsilon = value
		case paramDebugUlpsDiff:
			d.DebugUlpsDiff = value
		case paramAllEpsilon:
			d.AllEpsilon = value
		default:
			return nil, errors.Errorf("Unexpected parameter `%s` in `%s`, expected one of `%s`, `%s` or `%s`.",
				name, common.DIRECTIVE, paramUlpsEpsilon, paramDebugUlpsDiff, paramAllEpsilon)
		}
	}

	if d.UlpsEpsilon == "" {
		return nil, errors.New(missingParam("epsilon ULPs type name", paramUlpsEpsilon, typeName+"Ulps"))
	}
	if d.DebugUlpsDiff == "" {
		return nil, errors.New(missingParam("debug ULPs diff type name", paramDebugUlpsDiff, typeName+"DebugUlpsDiff"))
	}
	return d, nil
}

func missingParam(what, param, suggestion string) string {
	return fmt.Sprintf("Missing %s required to derive trait.\n\nhelp: try specifying `%s=%s` in `%s`.",
		what, param, suggestion, common.DIRECTIVE)
}
