package common

import "fmt"

const (
	FLOATEQ_MODULE   = "github.com/antithesishq/floateq"
	FLOATEQ_PACKAGE  = "floateq"
	DIRECTIVE        = "floateq:derive"
	GENERATED_SUFFIX = "_floateq.go"
	GENERATED_HEADER = "// Code generated by floateq-gen. DO NOT EDIT."
	ENV_PREFIX       = "FLOATEQ_GEN"
)

// GeneratedFileName is the file the derived methods of packageName are written to.
func GeneratedFileName(packageName string) string {
	return fmt.Sprintf("%s%s", packageName, GENERATED_SUFFIX)
}
