// Package report renders inventory state as console text.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/matthieukhl/stockroom/internal/inventory"
	"github.com/matthieukhl/stockroom/internal/models"
)

const (
	wideRule   = 70
	mediumRule = 50
)

// Formatter renders prices and reports for one locale.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter creates a formatter for a BCP-47 locale such as "en" or "es-CO".
func NewFormatter(locale, currency string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}, nil
}

// Price formats an amount with grouping separators and at most two decimals.
func (f *Formatter) Price(amount float64) string {
	return f.currency + f.printer.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

func (f *Formatter) Intro() string {
	return "🚀 Starting Stockroom - Inventory Management System...\n" +
		"📚 Browse by category, register products and review statistics\n"
}

func (f *Formatter) Menu() string {
	var b strings.Builder
	rule := strings.Repeat("=", mediumRule)
	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintln(&b, "🏪 STOCKROOM - INVENTORY MANAGEMENT SYSTEM")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "1️⃣  Search products by category")
	fmt.Fprintln(&b, "2️⃣  Add a new product to the inventory")
	fmt.Fprintln(&b, "3️⃣  Show inventory statistics")
	fmt.Fprintln(&b, "4️⃣  Exit")
	fmt.Fprint(&b, rule)
	return b.String()
}

// ProductLine renders one product as a search result line.
func (f *Formatter) ProductLine(p models.Product) string {
	return fmt.Sprintf("✅ %s - %s (Stock: %d)", p.Name, f.Price(p.Price), p.Stock)
}

// ProductTable renders the whole store.
func (f *Formatter) ProductTable(products []models.Product) string {
	var b strings.Builder
	rule := strings.Repeat("-", wideRule)

	fmt.Fprintln(&b, "\n📦 UPDATED INVENTORY:")
	fmt.Fprintln(&b, rule)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBRAND\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Category, f.Price(p.Price), p.Stock)
	}
	tw.Flush()

	fmt.Fprint(&b, rule)
	return b.String()
}

// CategoryList renders the registry as a bullet list.
func (f *Formatter) CategoryList(categories []string) string {
	var b strings.Builder
	fmt.Fprint(&b, "📋 Available categories:")
	for _, c := range categories {
		fmt.Fprintf(&b, "\n   • %s", c)
	}
	return b.String()
}

func (f *Formatter) InvalidCategory(category string, categories []string) string {
	return fmt.Sprintf("❌ Category %q is not valid.\n%s", category, f.CategoryList(categories))
}

// SearchResult renders the outcome of a category search. Other brands are
// only listed when at least one product matched.
func (f *Formatter) SearchResult(match inventory.CategoryMatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n🔎 RESULTS FOR %q:\n", strings.ToUpper(match.Category))
	fmt.Fprint(&b, strings.Repeat("-", mediumRule))

	if len(match.Products) == 0 {
		fmt.Fprintf(&b, "\n❌ No products registered in category %q", match.Category)
		return b.String()
	}

	for _, p := range match.Products {
		fmt.Fprintf(&b, "\n%s", f.ProductLine(p))
	}

	if len(match.Brands) > 0 {
		fmt.Fprintf(&b, "\n\n🏷️  Other brands available in %s:", match.Category)
		for _, brand := range match.Brands {
			fmt.Fprintf(&b, "\n   • %s", brand)
		}
	}
	return b.String()
}

// DuplicateBrand lists one stored product per unique lowercased name.
func (f *Formatter) DuplicateBrand(name string, inv *inventory.Inventory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n❌ ERROR: brand %q is already registered\n", name)
	fmt.Fprint(&b, "\n📦 UNIQUE PRODUCTS IN INVENTORY:")
	for _, n := range inv.UniqueNamesLowercased() {
		p, ok := inv.FindByName(n)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n   • %s (%s) - %s", p.Name, p.Category, f.Price(p.Price))
	}
	return b.String()
}

// Inserted confirms a new product and shows the updated store.
func (f *Formatter) Inserted(res inventory.InsertResult, products []models.Product) string {
	var b strings.Builder
	p := res.Product
	fmt.Fprintf(&b, "\n✅ Product %q added successfully!\n", p.Name)
	fmt.Fprintf(&b, "📊 Details: %s - %s (Stock: %d)\n", p.Category, f.Price(p.Price), p.Stock)
	fmt.Fprint(&b, f.ProductTable(products))
	if res.BrandMapped {
		fmt.Fprintf(&b, "\n🗺️  Brand map updated: %s → %s", p.Name, p.Category)
	}
	return b.String()
}

func (f *Formatter) Statistics(stats models.Statistics) string {
	var b strings.Builder
	fmt.Fprintln(&b, "\n📊 INVENTORY STATISTICS")
	fmt.Fprintln(&b, strings.Repeat("=", mediumRule))
	fmt.Fprintf(&b, "📈 Unique products: %d\n", stats.TotalProducts)
	fmt.Fprintf(&b, "💰 Total inventory value: %s\n", f.Price(stats.TotalInventoryValue))
	fmt.Fprintf(&b, "📋 Registered categories: %d\n", stats.RegisteredCategories)

	fmt.Fprint(&b, "\n🏷️  DISTRIBUTION BY CATEGORY:")
	for _, cc := range stats.CategoryCounts {
		fmt.Fprintf(&b, "\n   %s: %d %s", cc.Category, cc.Count, pluralize(cc.Count, "product", "products"))
	}

	fmt.Fprint(&b, "\n\n🗺️  BRAND MAP:")
	for _, bc := range stats.Brands {
		fmt.Fprintf(&b, "\n   %s → %s", bc.Brand, bc.Category)
	}
	return b.String()
}

// Categories renders the registry followed by the brand map.
func (f *Formatter) Categories(categories []string, brands []models.BrandCategory) string {
	var b strings.Builder
	fmt.Fprint(&b, f.CategoryList(categories))
	fmt.Fprint(&b, "\n\n🗺️  BRAND MAP:")
	for _, bc := range brands {
		fmt.Fprintf(&b, "\n   %s → %s", bc.Brand, bc.Category)
	}
	return b.String()
}

// Summary is printed when a session stops.
func (f *Formatter) Summary(stats models.Statistics) string {
	var b strings.Builder
	fmt.Fprintln(&b, "\n🔄 Closing system...")
	fmt.Fprintln(&b, "📊 Session summary:")
	fmt.Fprintf(&b, "   • Products in inventory: %d\n", stats.TotalProducts)
	fmt.Fprintf(&b, "   • Available categories: %d\n", stats.RegisteredCategories)
	fmt.Fprintf(&b, "   • Mapped brands: %d\n", stats.BrandMapSize)
	fmt.Fprint(&b, "\n👋 Thanks for using Stockroom!")
	return b.String()
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
