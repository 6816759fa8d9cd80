package file

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

const testPattern = "product-%03d.txt"

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewStore(fs, "data", testPattern, logger.New("test")), fs
}

func drink(id int) domain.Product {
	return domain.Product{
		ID:     id,
		Type:   domain.TypeDrink,
		Name:   "Tea",
		Price:  decimal.NewFromFloat(1.99),
		Rating: domain.NotRated,
	}
}

func TestStore_WriteAndLoadAll(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.LoadAll() // creates the folder
	require.NoError(t, err)

	food := domain.Product{
		ID:         2,
		Type:       domain.TypeFood,
		Name:       "Cake",
		Price:      decimal.NewFromFloat(3.99),
		Rating:     domain.TwoStars,
		BestBefore: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Reviews:    []domain.Review{{Rating: domain.TwoStars, Comments: "dry"}},
	}

	require.NoError(t, store.Write(drink(1)))
	require.NoError(t, store.Write(food))

	products, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, products, 2)

	byID := map[int]domain.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	assert.Equal(t, "Tea", byID[1].Name)
	assert.Equal(t, "Cake", byID[2].Name)
	assert.Len(t, byID[2].Reviews, 1)
}

func TestStore_LoadAll_CreatesMissingFolder(t *testing.T) {
	store, fs := newTestStore(t)

	products, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, products)

	exists, err := afero.DirExists(fs, "data")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_LoadAll_SkipsCorruptFile(t *testing.T) {
	store, fs := newTestStore(t)
	_, err := store.LoadAll()
	require.NoError(t, err)

	require.NoError(t, store.Write(drink(1)))
	require.NoError(t, afero.WriteFile(fs,
		filepath.Join("data", "product-002.txt"), []byte("total garbage"), 0o644))

	products, err := store.LoadAll()
	require.NoError(t, err, "one corrupt record must not abort the load")
	require.Len(t, products, 1)
	assert.Equal(t, 1, products[0].ID)
}

func TestStore_MaxID(t *testing.T) {
	store, _ := newTestStore(t)

	max, err := store.MaxID()
	require.NoError(t, err)
	assert.Equal(t, 0, max, "missing folder reads as empty")

	_, err = store.LoadAll()
	require.NoError(t, err)
	require.NoError(t, store.Write(drink(3)))
	require.NoError(t, store.Write(drink(17)))

	max, err = store.MaxID()
	require.NoError(t, err)
	assert.Equal(t, 17, max)
}

func TestStore_Write_Idempotent(t *testing.T) {
	store, fs := newTestStore(t)
	_, err := store.LoadAll()
	require.NoError(t, err)

	p := drink(1)
	require.NoError(t, store.Write(p))
	first, err := afero.ReadFile(fs, filepath.Join("data", "product-001.txt"))
	require.NoError(t, err)

	require.NoError(t, store.Write(p))
	second, err := afero.ReadFile(fs, filepath.Join("data", "product-001.txt"))
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical record is not duplicated")

	reviewed := p.WithReview(domain.Review{Rating: domain.FiveStars, Comments: "lovely"})
	require.NoError(t, store.Write(reviewed))
	third, err := afero.ReadFile(fs, filepath.Join("data", "product-001.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(third), "lovely", "new reviews replace the review block")
	assert.NotContains(t, string(third), "Not reviewed")
}

func TestStore_Delete(t *testing.T) {
	store, fs := newTestStore(t)
	_, err := store.LoadAll()
	require.NoError(t, err)

	require.NoError(t, store.Write(drink(1)))
	require.NoError(t, store.Delete(1))

	exists, err := afero.Exists(fs, filepath.Join("data", "product-001.txt"))
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Error(t, store.Delete(1), "deleting a missing record reports the failure")
}
