package caser

import (
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplateFuncs returns a function map of case conversions for use with
// text/template. Each convention is exposed under its short name, along
// with common string helpers:
//
//	tmpl := template.New("name").Funcs(caser.TemplateFuncs())
//	tmpl, _ = tmpl.Parse(`{{ .Field | snake }}`)
func TemplateFuncs() template.FuncMap {
	// Use golang.org/x/text/cases for natural-language title casing
	// (strings.Title is deprecated).
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"camel":      ConventionCamel.ConvertString,
		"pascal":     ConventionPascal.ConvertString,
		"snake":      ConventionSnake.ConvertString,
		"kebab":      ConventionKebab.ConvertString,
		"dot":        ConventionDot.ConvertString,
		"constant":   ConventionConstant.ConvertString,
		"train":      ConventionTrain.ConvertString,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
	}
}
