package cli

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/i18n"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/usecase/catalog"
)

// Menu is the interactive shop loop. It is pure plumbing over the
// catalog service: prompts, input reading and result printing, no
// business logic.
type Menu struct {
	svc    *catalog.Service
	in     *bufio.Scanner
	out    io.Writer
	logger *logger.Logger
	locale string
}

// New creates the menu bound to the given streams.
func New(svc *catalog.Service, in io.Reader, out io.Writer, log *logger.Logger, defaultLocale string) *Menu {
	return &Menu{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: log,
		locale: defaultLocale,
	}
}

// Run drives the menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, "\n** PRODUCT MANAGER **")
		fmt.Fprintln(m.out, "1.- View products.")
		fmt.Fprintln(m.out, "2.- Search product.")
		fmt.Fprintln(m.out, "3.- Show reviews.")
		fmt.Fprintln(m.out, "4.- Add product.")
		fmt.Fprintln(m.out, "5.- Add review.")
		fmt.Fprintln(m.out, "6.- Print report.")
		fmt.Fprintln(m.out, "7.- Delete product.")
		fmt.Fprintln(m.out, "8.- Discounts by rating.")
		fmt.Fprintln(m.out, "0.- Exit.")

		switch m.prompt("Option") {
		case "1":
			m.viewProducts()
		case "2":
			m.searchProduct()
		case "3":
			m.showReviews()
		case "4":
			m.addProduct()
		case "5":
			m.addReview()
		case "6":
			m.printReport()
		case "7":
			m.deleteProduct()
		case "8":
			m.showDiscounts()
		case "0", "":
			return
		default:
			fmt.Fprintln(m.out, "Unknown option.")
		}
	}
}

func (m *Menu) viewProducts() {
	tags := i18n.SupportedTags()
	sort.Strings(tags)
	fmt.Fprintf(m.out, "Available languages: %s\n", strings.Join(tags, ", "))
	if tag := m.prompt("Language (empty keeps " + m.locale + ")"); tag != "" {
		m.locale = tag
	}
	fmt.Fprint(m.out, m.svc.List(nil, nil, m.locale))
}

func (m *Menu) searchProduct() {
	key := m.prompt("Product id or name")
	product, err := m.findByKey(key)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintf(m.out, "%d: %s (%s) %s %s\n",
		product.ID, product.Name, product.Type, product.Price.StringFixed(2), product.Rating.Stars())
}

func (m *Menu) showReviews() {
	id, ok := m.promptInt("Product id")
	if !ok {
		return
	}
	reviews, err := m.svc.Reviews(id)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	if len(reviews) == 0 {
		fmt.Fprintln(m.out, "Not reviewed")
		return
	}
	for _, r := range reviews {
		fmt.Fprintf(m.out, "%s\t%s\n", r.Rating.Stars(), r.Comments)
	}
}

func (m *Menu) addProduct() {
	in := catalog.CreateInput{
		Type:  m.prompt("Type (Food/Drink)"),
		Name:  m.prompt("Name"),
		Price: m.prompt("Price"),
	}
	if stars, ok := m.promptInt("Rating (0-5)"); ok {
		in.Rating = stars
	}
	if in.Type == "Food" {
		in.BestBefore = m.prompt("Best before")
	}

	product, err := m.svc.Create(in, m.locale)
	if err != nil {
		m.logger.Debugf("Create rejected: %v", err)
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintf(m.out, "Created product %d.\n", product.ID)
}

func (m *Menu) addReview() {
	id, ok := m.promptInt("Product id")
	if !ok {
		return
	}
	stars, ok := m.promptInt("Rating (0-5)")
	if !ok {
		return
	}
	comments := m.prompt("Comments")

	product, err := m.svc.Review(id, stars, comments)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintf(m.out, "Product %d now rated %s.\n", product.ID, product.Rating.Stars())
}

func (m *Menu) printReport() {
	id, ok := m.promptInt("Product id")
	if !ok {
		return
	}
	report, err := m.svc.Report(id)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprint(m.out, report)
}

func (m *Menu) deleteProduct() {
	key := m.prompt("Product id or name")
	var removed bool
	if id, err := strconv.Atoi(key); err == nil {
		removed = m.svc.DeleteByID(id)
	} else {
		removed = m.svc.DeleteByName(key)
	}
	if removed {
		fmt.Fprintln(m.out, "Product removed.")
	} else {
		fmt.Fprintln(m.out, "The product could not be removed.")
	}
}

func (m *Menu) showDiscounts() {
	discounts := m.svc.DiscountsByRating(m.locale)
	stars := make([]string, 0, len(discounts))
	for s := range discounts {
		stars = append(stars, s)
	}
	sort.Strings(stars)
	for _, s := range stars {
		fmt.Fprintf(m.out, "%s\t%s\n", s, discounts[s])
	}
}

func (m *Menu) findByKey(key string) (domain.Product, error) {
	if id, err := strconv.Atoi(key); err == nil {
		return m.svc.FindByID(id)
	}
	return m.svc.FindByName(key)
}

func (m *Menu) prompt(label string) string {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) promptInt(label string) (int, bool) {
	text := m.prompt(label)
	n, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintf(m.out, "Not a number: %q\n", text)
		return 0, false
	}
	return n, true
}
