package listing

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed translations.yml
var translationsYML []byte

type translationRule struct {
	Sv string `yaml:"sv"`
	En string `yaml:"en"`
}

type Translator struct {
	rules []translationRule
}

func NewTranslator() *Translator {
	var rules []translationRule
	if err := yaml.Unmarshal(translationsYML, &rules); err != nil {
		panic(fmt.Sprintf("failed to parse embedded translation table: %v", err))
	}

	return &Translator{rules: rules}
}

// Translate renders Swedish free text as best-effort English. Matching is
// literal substring replacement in table order: rules chain, and a source
// word embedded in a longer word is replaced too. Do not switch to
// word-boundary matching; the served output depends on this behavior.
func (t *Translator) Translate(text string) string {
	if text == "" {
		return text
	}

	result := strings.ToLower(text)
	for _, rule := range t.rules {
		result = strings.ReplaceAll(result, rule.Sv, rule.En)
	}

	runes := []rune(result)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
