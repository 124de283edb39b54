package listing

// Scraped input types

// RawRecord is one scraped listing exactly as the crawler found it.
// Every field is optional; empty string means the page did not expose it.
type RawRecord struct {
	Title             string
	Category          string
	Location          string
	Price             string
	Description       string
	FullDescription   string
	StructuredContent []ContentSection
	Revenue           string
	DetailedRevenue   string
	ProfitStatus      string
	DetailedProfit    string
	FinancialDetails  []string
	EmployeeCount     string
	Phone             string
	Email             string
	BrokerName        string
	BrokerCompany     string
	URL               string
}

// ContentSection is one named free-text block from a listing detail page.
// Kept as a slice entry rather than a map value so section order survives.
type ContentSection struct {
	Key  string
	Text string
}

// Normalized output types

type Listing struct {
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Location     string          `json:"location"`
	Price        string          `json:"price"`
	Category     string          `json:"category"`
	Industry     string          `json:"industry"`
	Link         string          `json:"link"`
	Details      []DetailSection `json:"details"`
	BusinessName string          `json:"business_name"`
	ContactName  string          `json:"contact_name"`
	PhoneNumber  string          `json:"phone_number"`
}

// DetailSection is one labeled group of human-readable fact lines.
type DetailSection struct {
	Summary string   `json:"summary"`
	Items   []string `json:"items"`
}

// Query holds the consumer-side post-filter parameters. Zero values mean
// "no constraint"; Limit 0 means no pagination cap.
type Query struct {
	Category string
	Location string
	Search   string
	Offset   int
	Limit    int
}
