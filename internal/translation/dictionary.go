// Package translation resolves UI text keys into the languages farmers and dealers use.
package translation

// Supported language codes.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// Dictionary maps a text key to its rendering per language.
type Dictionary map[string]map[string]string

// Lookup returns the text for key in lang.
func (d Dictionary) Lookup(key, lang string) (string, bool) {
	texts, ok := d[key]
	if !ok {
		return "", false
	}
	text, ok := texts[lang]
	return text, ok && text != ""
}

// English returns the English text for key, or the key itself when unknown.
func (d Dictionary) English(key string) string {
	if text, ok := d.Lookup(key, LangEnglish); ok {
		return text
	}
	return key
}

// DefaultDictionary holds the built-in strings for the ledger and batch screens.
func DefaultDictionary() Dictionary {
	return Dictionary{
		"ledger.title":            {LangEnglish: "Farmer Ledger", LangHindi: "किसान खाता"},
		"ledger.credit":           {LangEnglish: "Credit", LangHindi: "जमा"},
		"ledger.debit":            {LangEnglish: "Debit", LangHindi: "नामे"},
		"ledger.net_balance":      {LangEnglish: "Net Balance", LangHindi: "शेष राशि"},
		"ledger.total_credits":    {LangEnglish: "Total Credits", LangHindi: "कुल जमा"},
		"ledger.total_debits":     {LangEnglish: "Total Debits", LangHindi: "कुल नामे"},
		"ledger.owes_dealer":      {LangEnglish: "Owes dealer", LangHindi: "डीलर को देय"},
		"ledger.no_transactions":  {LangEnglish: "No transactions yet", LangHindi: "अभी कोई लेन-देन नहीं"},
		"ledger.add_transaction":  {LangEnglish: "Add Transaction", LangHindi: "लेन-देन जोड़ें"},
		"ledger.category.feed":    {LangEnglish: "Feed", LangHindi: "दाना"},
		"ledger.category.chicks":  {LangEnglish: "Chicks", LangHindi: "चूज़े"},
		"ledger.category.payment": {LangEnglish: "Payment", LangHindi: "भुगतान"},
		"batch.title":             {LangEnglish: "Batches", LangHindi: "बैच"},
		"batch.age_days":          {LangEnglish: "Age (days)", LangHindi: "आयु (दिन)"},
		"batch.mortality":         {LangEnglish: "Mortality", LangHindi: "मृत्यु दर"},
		"batch.current_count":     {LangEnglish: "Live Birds", LangHindi: "जीवित पक्षी"},
		"batch.feed_consumed":     {LangEnglish: "Feed Consumed (kg)", LangHindi: "खपत दाना (किग्रा)"},
		"batch.average_weight":    {LangEnglish: "Average Weight (kg)", LangHindi: "औसत वजन (किग्रा)"},
		"batch.fcr":               {LangEnglish: "FCR", LangHindi: "एफसीआर"},
		"batch.completed":         {LangEnglish: "Completed", LangHindi: "पूर्ण"},
	}
}
