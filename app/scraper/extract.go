package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhedlund/bizcomb/app/listing"
)

// Swedish section headings on detail pages, mapped to the stable keys the
// transformer labels. Unrecognized headings fall back to a snake_case key.
var sectionKeys = map[string]string{
	"kort om företaget":          "company_brief",
	"potential":                  "potential",
	"anledning till försäljning": "reason_for_sale",
	"prisidé":                    "price_idea",
	"sammanfattning":             "summary",
	"beskrivning":                "description",
	"verksamhet":                 "business_activity",
	"marknad":                    "market",
	"konkurrens":                 "competition",
}

func extractIndexRecords(doc *goquery.Document, baseURL string) []listing.RawRecord {
	var records []listing.RawRecord

	doc.Find("article.listing-card").Each(func(_ int, card *goquery.Selection) {
		titleLink := card.Find("h2.listing-card-title a").First()

		url, _ := titleLink.Attr("href")
		url = strings.TrimSpace(url)
		if url != "" && !strings.HasPrefix(url, "http") {
			url = baseURL + url
		}

		records = append(records, listing.RawRecord{
			Title:       strings.TrimSpace(titleLink.Text()),
			Category:    strings.TrimSpace(card.Find("span.listing-card-category").First().Text()),
			Location:    strings.TrimSpace(card.Find("span.listing-card-location").First().Text()),
			Price:       strings.TrimSpace(card.Find("span.listing-card-price").First().Text()),
			Description: strings.TrimSpace(card.Find("p.listing-card-description").First().Text()),
			URL:         url,
		})
	})

	return records
}

func extractDetail(doc *goquery.Document, record *listing.RawRecord) {
	if text := strings.TrimSpace(doc.Find("div.listing-description").First().Text()); text != "" {
		record.FullDescription = text
	}

	doc.Find("section.listing-section").Each(func(_ int, section *goquery.Selection) {
		heading := strings.TrimSpace(section.Find("h3").First().Text())
		text := strings.TrimSpace(section.Find("div.listing-section-text").First().Text())
		if heading == "" || text == "" {
			return
		}

		record.StructuredContent = append(record.StructuredContent, listing.ContentSection{
			Key:  sectionKey(heading),
			Text: text,
		})
	})

	extractFinancials(doc, record)
	extractBroker(doc, record)
}

func extractFinancials(doc *goquery.Document, record *listing.RawRecord) {
	doc.Find("dl.listing-financials dt").Each(func(_ int, dt *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(dt.Text()))
		value := strings.TrimSpace(dt.NextFiltered("dd").Text())
		if value == "" {
			return
		}

		switch label {
		case "omsättning":
			record.Revenue = value
		case "detaljerad omsättning":
			record.DetailedRevenue = value
		case "lönsamhet":
			record.ProfitStatus = value
		case "detaljerad vinst":
			record.DetailedProfit = value
		case "antal anställda":
			record.EmployeeCount = value
		}
	})

	doc.Find("ul.listing-financial-details li").Each(func(_ int, li *goquery.Selection) {
		if detail := strings.TrimSpace(li.Text()); detail != "" {
			record.FinancialDetails = append(record.FinancialDetails, detail)
		}
	})
}

func extractBroker(doc *goquery.Document, record *listing.RawRecord) {
	broker := doc.Find("div.broker-card").First()
	if broker.Length() == 0 {
		return
	}

	record.BrokerName = strings.TrimSpace(broker.Find("span.broker-name").First().Text())
	record.BrokerCompany = strings.TrimSpace(broker.Find("span.broker-company").First().Text())
	record.Phone = strings.TrimSpace(broker.Find("a.broker-phone").First().Text())

	email := strings.TrimSpace(broker.Find("a.broker-email").First().Text())
	if email == "" {
		if href, ok := broker.Find("a.broker-email").First().Attr("href"); ok {
			email = strings.TrimPrefix(strings.TrimSpace(href), "mailto:")
		}
	}
	record.Email = email
}

func sectionKey(heading string) string {
	normalized := strings.ToLower(strings.TrimSpace(heading))
	if key, ok := sectionKeys[normalized]; ok {
		return key
	}
	return strings.Join(strings.Fields(normalized), "_")
}
