package caser

import (
	"strings"
	"unicode"

	"github.com/erraggy/casetools/caseerrors"
)

// Convention identifies a target case convention.
type Convention string

const (
	// ConventionUnknown is the zero value, returned by Detect when no
	// convention can be inferred from the input.
	ConventionUnknown Convention = ""

	// ConventionCamel produces camelCase.
	// Example: "first name" -> "firstName"
	ConventionCamel Convention = "camel"

	// ConventionPascal produces PascalCase.
	// Example: "first name" -> "FirstName"
	ConventionPascal Convention = "pascal"

	// ConventionSnake produces snake_case.
	// Example: "firstName" -> "first_name"
	ConventionSnake Convention = "snake"

	// ConventionKebab produces kebab-case.
	// Example: "firstName" -> "first-name"
	ConventionKebab Convention = "kebab"

	// ConventionDot produces dot.case.
	// Example: "firstName" -> "first.name"
	ConventionDot Convention = "dot"

	// ConventionConstant produces CONSTANT_CASE.
	// Example: "firstName" -> "FIRST_NAME"
	ConventionConstant Convention = "constant"

	// ConventionTrain produces Train-Case.
	// Example: "firstName" -> "First-Name"
	ConventionTrain Convention = "train"

	// ConventionTitle produces Title Case.
	// Example: "first_name" -> "First Name"
	ConventionTitle Convention = "title"
)

// Conventions returns every defined convention in stable order.
func Conventions() []Convention {
	return []Convention{
		ConventionCamel,
		ConventionPascal,
		ConventionSnake,
		ConventionKebab,
		ConventionDot,
		ConventionConstant,
		ConventionTrain,
		ConventionTitle,
	}
}

// String returns the convention name.
func (c Convention) String() string {
	return string(c)
}

// IsDefined reports whether c is one of the defined conventions.
func (c Convention) IsDefined() bool {
	_, ok := emitters[c]
	return ok
}

// Caser converts input text into a single target case convention.
// All conversions share one validation, cleaning, and segmentation
// pipeline; implementations differ only in how words are joined and cased.
type Caser interface {
	// Convert validates input and converts it to the target convention.
	// Non-string input fails with a [caseerrors.InputError].
	Convert(input any) (string, error)

	// ConvertString converts an already-validated string.
	ConvertString(s string) string

	// Target reports the convention this Caser emits.
	Target() Convention
}

// New returns a Caser for the given convention, or a
// [caseerrors.ConventionError] when the convention is not defined.
func New(c Convention) (Caser, error) {
	if !c.IsDefined() {
		return nil, &caseerrors.ConventionError{
			Name:    string(c),
			Message: "valid values: " + conventionNames(),
		}
	}
	return c, nil
}

// ParseConvention resolves a convention name, accepting common aliases
// (e.g. "lowerCamel", "screaming-snake", "dash"). Matching is
// case-insensitive and ignores separators in the name itself.
func ParseConvention(name string) (Convention, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "", ".", "").Replace(key)
	switch key {
	case "camel", "camelcase", "lowercamel":
		return ConventionCamel, nil
	case "pascal", "pascalcase", "uppercamel":
		return ConventionPascal, nil
	case "snake", "snakecase", "lowersnake", "underscore":
		return ConventionSnake, nil
	case "kebab", "kebabcase", "dash", "lowerdash":
		return ConventionKebab, nil
	case "dot", "dotcase":
		return ConventionDot, nil
	case "constant", "constantcase", "screaming", "screamingsnake", "uppersnake", "upperunderscore":
		return ConventionConstant, nil
	case "train", "traincase", "upperkebab", "upperdash":
		return ConventionTrain, nil
	case "title", "titlecase", "start":
		return ConventionTitle, nil
	default:
		return ConventionUnknown, &caseerrors.ConventionError{
			Name:    name,
			Message: "valid values: " + conventionNames(),
		}
	}
}

// emitter describes how one convention joins and cases segmented words.
type emitter struct {
	sep       string
	firstWord func(word string) string
	nextWords func(word string) string
}

var emitters = map[Convention]emitter{
	ConventionCamel:    {sep: "", firstWord: lowerWord, nextWords: titleWord},
	ConventionPascal:   {sep: "", firstWord: titleWord, nextWords: titleWord},
	ConventionSnake:    {sep: "_", firstWord: lowerWord, nextWords: lowerWord},
	ConventionKebab:    {sep: "-", firstWord: lowerWord, nextWords: lowerWord},
	ConventionDot:      {sep: ".", firstWord: lowerWord, nextWords: lowerWord},
	ConventionConstant: {sep: "_", firstWord: upperWord, nextWords: upperWord},
	ConventionTrain:    {sep: "-", firstWord: titleWord, nextWords: titleWord},
	ConventionTitle:    {sep: " ", firstWord: titleWord, nextWords: titleWord},
}

// Convert validates input and converts it to convention c.
// Non-string input fails with a [caseerrors.InputError] carrying the
// message "Input must be a string"; no partial output is produced.
func (c Convention) Convert(input any) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", caseerrors.NewInputError(input)
	}
	return c.ConvertString(s), nil
}

// ConvertString converts s to convention c. Undefined conventions
// (including ConventionUnknown) return s unchanged.
func (c Convention) ConvertString(s string) string {
	e, ok := emitters[c]
	if !ok {
		return s
	}
	words := Split(s)
	if len(words) == 0 {
		return ""
	}
	var result strings.Builder
	result.Grow(len(s) + len(words))
	result.WriteString(e.firstWord(words[0]))
	for _, word := range words[1:] {
		result.WriteString(e.sep)
		result.WriteString(e.nextWords(word))
	}
	return result.String()
}

// Target reports the convention itself, satisfying [Caser].
func (c Convention) Target() Convention {
	return c
}

// Split segments s into the words every conversion operates on.
//
// Characters outside letters, digits, and the separator set (whitespace,
// hyphen, underscore, dot) are dropped before segmentation, so they
// neither appear in words nor create boundaries. Separator runs collapse
// to a single boundary. An implicit boundary is inserted at every
// lowercase-letter-to-uppercase-letter transition only; consecutive
// uppercase letters stay in one word.
func Split(s string) []string {
	var words []string
	var word []rune
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}

	var prev rune
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if unicode.IsLower(prev) && unicode.IsUpper(r) {
				flush()
			}
			word = append(word, r)
			prev = r
		case unicode.IsDigit(r):
			word = append(word, r)
			prev = r
		case isSeparator(r):
			flush()
			prev = 0
		default:
			// Disallowed character: cleaned away without forming a boundary,
			// so adjacent letters join into one word.
		}
	}
	flush()
	return words
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
}

func lowerWord(w string) string {
	return strings.ToLower(w)
}

func upperWord(w string) string {
	return strings.ToUpper(w)
}

// titleWord lowercases the word and uppercases its first letter.
func titleWord(w string) string {
	if w == "" {
		return w
	}
	var ret = make([]rune, 0, len(w))
	for i, r := range w {
		if i == 0 {
			ret = append(ret, unicode.ToUpper(r))
			continue
		}
		ret = append(ret, unicode.ToLower(r))
	}
	return string(ret)
}

func conventionNames() string {
	names := make([]string, 0, len(emitters))
	for _, c := range Conventions() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
