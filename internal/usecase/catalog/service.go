package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/i18n"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/pkg/validator"
	"github.com/Pesokrava/product_catalog/internal/repository/file"
)

// CreateInput carries the raw, possibly locale-formatted fields for a
// new product. Price and BestBefore stay text until parsed with the
// caller's locale.
type CreateInput struct {
	Type       string `validate:"required,oneof=Food Drink"`
	Name       string `validate:"required,min=1,max=255"`
	Price      string `validate:"required"`
	Rating     int    `validate:"gte=0,lte=5"`
	BestBefore string `validate:"required_if=Type Food"`
}

// Service owns the authoritative in-memory product set and coordinates
// every mutation and its file-backed persistence. A single
// reader/writer lock guards the set: lookups and listings share it,
// create/review/delete serialize on it. Disk is a best-effort cache of
// memory; a failed file operation never rolls back the set.
type Service struct {
	store   domain.RecordStore
	formats *i18n.Registry
	logger  *logger.Logger
	now     func() time.Time

	mu       sync.RWMutex
	products map[int]domain.Product
	nextID   int
}

// NewService creates the catalog service. The next-id counter is seeded
// from the largest id embedded in the existing record files, so ids are
// never reused within a process. Ids are not guaranteed unique across
// restarts when record files are removed out of band.
func NewService(store domain.RecordStore, formats *i18n.Registry, log *logger.Logger) *Service {
	s := &Service{
		store:    store,
		formats:  formats,
		logger:   log,
		now:      time.Now,
		products: make(map[int]domain.Product),
	}

	maxID, err := store.MaxID()
	if err != nil {
		log.Error("Failed to seed id counter from record files", err)
	}
	s.nextID = maxID

	return s
}

// LoadAll rescans the data folder and replaces the in-memory set with
// the decoded records. It is idempotent and safe to call repeatedly;
// corrupt files were already skipped by the store.
func (s *Service) LoadAll() error {
	products, err := s.store.LoadAll()
	if err != nil {
		s.logger.Error("Failed to load catalog records", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[int]domain.Product, len(products))
	for _, p := range products {
		s.products[p.ID] = p
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}

	s.logger.Infof("Loaded %d products from record files", len(products))
	return nil
}

// Create validates the input, parses the locale-formatted fields,
// assigns the next sequential id and inserts the product. Malformed
// numeric or date input surfaces as a parse error and leaves the set
// untouched.
func (s *Service) Create(in CreateInput, localeTag string) (domain.Product, error) {
	if err := validator.Get().Struct(in); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.Product{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	f := s.formats.For(localeTag)

	price, err := f.ParsePrice(in.Price)
	if err != nil {
		return domain.Product{}, err
	}
	if price.IsNegative() {
		return domain.Product{}, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	product := domain.Product{
		Type:   domain.ProductType(in.Type),
		Name:   in.Name,
		Price:  price,
		Rating: domain.RatingFromOrdinal(in.Rating),
	}
	if product.Type == domain.TypeFood {
		bestBefore, err := f.ParseDate(in.BestBefore)
		if err != nil {
			return domain.Product{}, err
		}
		product.BestBefore = bestBefore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	product.ID = s.nextID
	s.products[product.ID] = product

	if err := s.store.Write(product); err != nil {
		s.logger.Error("Failed to persist new product record", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product created successfully")

	return product, nil
}

// FindByID returns the product with the given id.
func (s *Service) FindByID(id int) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return p, nil
}

// FindByName returns the first product with an exact name match, in id
// order. Name is not a uniqueness key.
func (s *Service) FindByName(name string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.sortedIDs() {
		if p := s.products[id]; p.Name == name {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%w: name %q", domain.ErrNotFound, name)
}

// Review appends a review to the product and recomputes its displayed
// rating as the rounded average of all review ordinals. The rating is
// always derived from accumulated reviews, never set directly once a
// review exists. The updated instance replaces the old one in the set
// and its record file is rewritten inside the same critical section.
func (s *Service) Review(id int, stars int, comments string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}

	updated := p.WithReview(domain.Review{
		Rating:   domain.RatingFromOrdinal(stars),
		Comments: comments,
	})
	updated = updated.ApplyRating(domain.AverageRating(updated.Reviews))
	s.products[id] = updated

	if err := s.store.Write(updated); err != nil {
		s.logger.Error("Failed to persist reviewed product record", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
		"rating":     stars,
		"derived":    int(updated.Rating),
	}).Info("Review added successfully")

	return updated, nil
}

// Reviews returns the product's reviews ordered by ascending rating.
func (s *Service) Reviews(id int) ([]domain.Review, error) {
	p, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	return domain.SortedReviews(p.Reviews), nil
}

// Report renders the locale-stable record text for the product and
// persists it. The write is idempotent: an unchanged record file is not
// touched, while new reviews replace the review block.
func (s *Service) Report(id int) (string, error) {
	p, err := s.FindByID(id)
	if err != nil {
		return "", err
	}

	record := file.Encode(p)
	if err := s.store.Write(p); err != nil {
		s.logger.Error("Failed to write product report", err)
	}
	return record, nil
}

// List renders every product passing the filter, ordered by the given
// comparison, in the locale's catalog dialect. A nil filter keeps
// everything; a nil less orders by id.
func (s *Service) List(filter func(domain.Product) bool, less func(a, b domain.Product) bool, localeTag string) string {
	snapshot := s.snapshot()

	if less == nil {
		less = domain.Product.Less
	}

	var selected []domain.Product
	for _, p := range snapshot {
		if filter == nil || filter(p) {
			selected = append(selected, p)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool { return less(selected[i], selected[j]) })

	f := s.formats.For(localeTag)
	var b strings.Builder
	for _, p := range selected {
		b.WriteString(f.FormatProduct(p))
		b.WriteByte('\n')
	}
	return b.String()
}

// DeleteByID removes the product from the set and deletes its record
// file. It reports whether anything was removed. A file deletion error
// is logged but does not restore the in-memory entry.
func (s *Service) DeleteByID(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)

	if err := s.store.Delete(id); err != nil {
		s.logger.Error("Failed to delete product record file", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
	}).Info("Product deleted successfully")

	return true
}

// DeleteByName removes the first product with an exact name match.
func (s *Service) DeleteByName(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.sortedIDs() {
		if s.products[id].Name != name {
			continue
		}
		delete(s.products, id)
		if err := s.store.Delete(id); err != nil {
			s.logger.Error("Failed to delete product record file", err)
		}
		return true
	}
	return false
}

// DiscountsByRating groups products by their current rating, sums each
// group's discount at the present moment and formats the totals with
// the locale's currency.
func (s *Service) DiscountsByRating(localeTag string) map[string]string {
	snapshot := s.snapshot()
	now := s.now()

	totals := make(map[string]decimal.Decimal)
	for _, p := range snapshot {
		stars := p.Rating.Stars()
		totals[stars] = totals[stars].Add(p.Discount(now))
	}

	f := s.formats.For(localeTag)
	out := make(map[string]string, len(totals))
	for stars, total := range totals {
		out[stars] = f.FormatCurrency(total)
	}
	return out
}

// snapshot copies the product set under the read lock.
func (s *Service) snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out
}

// sortedIDs returns the set's ids in ascending order. Callers must hold
// the lock.
func (s *Service) sortedIDs() []int {
	ids := make([]int, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
