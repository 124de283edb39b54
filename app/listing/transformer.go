package listing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Structured content blocks at or below this trimmed length are headings or
// navigation fragments, not real copy, and are dropped.
const minSectionLength = 20

var sectionLabels = map[string]string{
	"company_brief":     "Company Overview",
	"potential":         "Growth Potential",
	"reason_for_sale":   "Reason for Sale",
	"price_idea":        "Pricing Details",
	"summary":           "Summary",
	"description":       "Description",
	"business_activity": "Business Activity",
	"market":            "Market Information",
	"competition":       "Competitive Situation",
}

// Transformer turns one raw scraped record into a presentable listing.
// It is a pure per-record function: no shared state, safe to call from
// multiple goroutines.
type Transformer struct {
	translator *Translator
	converter  *Converter
}

func NewTransformer(translator *Translator, converter *Converter) *Transformer {
	return &Transformer{
		translator: translator,
		converter:  converter,
	}
}

func (t *Transformer) Transform(raw RawRecord) Listing {
	details := make([]DetailSection, 0, len(raw.StructuredContent)+4)

	if section, ok := t.descriptionSection(raw); ok {
		details = append(details, section)
	}
	details = append(details, t.structuredSections(raw)...)
	if section, ok := t.financialSection(raw); ok {
		details = append(details, section)
	}
	if section, ok := t.metricsSection(raw); ok {
		details = append(details, section)
	}
	if section, ok := t.contactSection(raw); ok {
		details = append(details, section)
	}

	company := raw.BrokerCompany
	if company == "" {
		company = raw.BrokerName
	}

	phoneNumber := raw.Phone
	if phoneNumber == "" {
		phoneNumber = "Contact via website"
	}

	category := t.translator.Translate(raw.Category)

	return Listing{
		Title:        t.translator.Translate(raw.Title),
		Company:      t.translator.Translate(company),
		Location:     t.translator.Translate(raw.Location),
		Price:        t.converter.Convert(raw.Price),
		Category:     category,
		Industry:     category,
		Link:         raw.URL,
		Details:      details,
		BusinessName: t.translator.Translate(raw.Title),
		ContactName:  t.translator.Translate(raw.BrokerName),
		PhoneNumber:  phoneNumber,
	}
}

func (t *Transformer) descriptionSection(raw RawRecord) (DetailSection, bool) {
	text := raw.FullDescription
	if text == "" {
		text = raw.Description
	}
	if text == "" {
		return DetailSection{}, false
	}

	return DetailSection{
		Summary: "Business Description",
		Items:   []string{t.translator.Translate(text)},
	}, true
}

func (t *Transformer) structuredSections(raw RawRecord) []DetailSection {
	sections := make([]DetailSection, 0, len(raw.StructuredContent))
	for _, content := range raw.StructuredContent {
		if utf8.RuneCountInString(strings.TrimSpace(content.Text)) <= minSectionLength {
			continue
		}

		sections = append(sections, DetailSection{
			Summary: t.sectionLabel(content.Key),
			Items:   []string{t.translator.Translate(content.Text)},
		})
	}
	return sections
}

func (t *Transformer) sectionLabel(key string) string {
	if label, ok := sectionLabels[key]; ok {
		return label
	}
	// A Caser is stateful, so build one per call to keep Transform
	// goroutine-safe
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func (t *Transformer) financialSection(raw RawRecord) (DetailSection, bool) {
	var items []string

	lines := []struct {
		label string
		value string
	}{
		{"Revenue", raw.Revenue},
		{"Detailed Revenue", raw.DetailedRevenue},
		{"Profit Status", raw.ProfitStatus},
		{"Detailed Profit", raw.DetailedProfit},
	}
	for _, line := range lines {
		if line.value != "" {
			items = append(items, line.label+": "+t.translator.Translate(line.value))
		}
	}

	if raw.Price != "" {
		items = append(items, "Asking Price: "+t.converter.Convert(raw.Price))
	}

	for _, detail := range raw.FinancialDetails {
		if detail != "" {
			items = append(items, t.translator.Translate(detail))
		}
	}

	if len(items) == 0 {
		return DetailSection{}, false
	}
	return DetailSection{Summary: "Financial Information", Items: items}, true
}

func (t *Transformer) metricsSection(raw RawRecord) (DetailSection, bool) {
	if raw.EmployeeCount == "" {
		return DetailSection{}, false
	}

	return DetailSection{
		Summary: "Business Metrics",
		Items:   []string{"Employees: " + t.translator.Translate(raw.EmployeeCount)},
	}, true
}

func (t *Transformer) contactSection(raw RawRecord) (DetailSection, bool) {
	var items []string

	if raw.Phone != "" {
		items = append(items, "Phone: "+raw.Phone)
	}
	if raw.Email != "" {
		items = append(items, "Email: "+raw.Email)
	}
	if raw.BrokerName != "" {
		items = append(items, "Broker: "+t.translator.Translate(raw.BrokerName))
	}
	if raw.BrokerCompany != "" {
		items = append(items, "Broker Company: "+t.translator.Translate(raw.BrokerCompany))
	}

	if len(items) == 0 {
		return DetailSection{}, false
	}
	return DetailSection{Summary: "Contact Information", Items: items}, true
}
