package caser

import "unicode"

// Detect reports the convention s most resembles, or ConventionUnknown
// when s carries no signal (empty, whitespace-only, or symbol-only).
//
// Detection is best-effort: the first explicit separator wins over case
// signals, and an all-lowercase single word reports ConventionCamel since
// every lowercase family renders it identically. Mixed documents should
// not rely on Detect for round-tripping.
func Detect(s string) Convention {
	var (
		hasUpper   bool
		hasLower   bool
		camel      bool
		firstUpper bool
		seenLetter bool
		sep        rune
		prev       rune
	)

	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if !seenLetter {
				firstUpper = true
			}
			seenLetter = true
			hasUpper = true
			if unicode.IsLower(prev) {
				camel = true
			}
			prev = r
		case unicode.IsLower(r):
			seenLetter = true
			hasLower = true
			prev = r
		case unicode.IsDigit(r):
			prev = r
		case isSeparator(r):
			if sep == 0 {
				if unicode.IsSpace(r) {
					sep = ' '
				} else {
					sep = r
				}
			}
			prev = 0
		default:
			// Symbols carry no signal either way.
		}
	}

	if !seenLetter {
		return ConventionUnknown
	}

	switch sep {
	case '_':
		if hasUpper && !hasLower {
			return ConventionConstant
		}
		if hasUpper {
			return ConventionUnknown
		}
		return ConventionSnake
	case '-':
		if hasUpper && !hasLower {
			return ConventionUnknown
		}
		if hasUpper {
			return ConventionTrain
		}
		return ConventionKebab
	case '.':
		if hasUpper {
			return ConventionUnknown
		}
		return ConventionDot
	case ' ':
		if firstUpper {
			return ConventionTitle
		}
		return ConventionUnknown
	}

	// No explicit separators: classify on case signals alone.
	switch {
	case hasUpper && !hasLower:
		return ConventionConstant
	case camel && firstUpper:
		return ConventionPascal
	case camel:
		return ConventionCamel
	case firstUpper:
		return ConventionPascal
	default:
		return ConventionCamel
	}
}
