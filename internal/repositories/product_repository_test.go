package repositories_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"loja/internal/config"
	"loja/internal/database"
	"loja/internal/models"
	"loja/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGORMRepo(t *testing.T) repositories.ProductRepository {
	t.Helper()
	db, err := database.Open(config.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return repositories.NewGORMProductRepository(db)
}

func newMemoryRepo(t *testing.T) repositories.ProductRepository {
	return repositories.NewMockProductRepository()
}

// runForEachRepo runs the same contract test against both implementations.
func runForEachRepo(t *testing.T, test func(t *testing.T, repo repositories.ProductRepository)) {
	t.Run("GORM", func(t *testing.T) { test(t, newGORMRepo(t)) })
	t.Run("InMemory", func(t *testing.T) { test(t, newMemoryRepo(t)) })
}

func TestProductRepository_CreateAssignsSequentialIDs(t *testing.T) {
	runForEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		for i, name := range []string{"A", "B", "C"} {
			p := &models.Product{Nome: name, Preco: 1, QuantidadeEstoque: 1}
			require.NoError(t, repo.Create(p))
			assert.Equal(t, uint(i+1), p.ID)
		}

		products, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, []uint{1, 2, 3}, []uint{products[0].ID, products[1].ID, products[2].ID})
	})
}

func TestProductRepository_GetAllEmpty(t *testing.T) {
	runForEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		products, err := repo.GetAll()
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestProductRepository_RoundTrip(t *testing.T) {
	runForEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		descricao := "Algodão"
		p := &models.Product{Nome: "Camiseta", Descricao: &descricao, Preco: 49.9, QuantidadeEstoque: 10}
		require.NoError(t, repo.Create(p))

		got, err := repo.GetByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, *p, *got)
	})
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	runForEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		p := &models.Product{Nome: "Boné", Preco: 35, QuantidadeEstoque: 5}
		require.NoError(t, repo.Create(p))

		updated, err := repo.Update(p.ID, func(product *models.Product) error {
			product.QuantidadeEstoque = 0
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.QuantidadeEstoque)
		got, err := repo.GetByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.QuantidadeEstoque)

		require.NoError(t, repo.Delete(p.ID))
		_, err = repo.GetByID(p.ID)
		assert.ErrorIs(t, err, models.ErrProductNotFound)

		err = repo.Delete(p.ID)
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})
}

func TestProductRepository_UpdateUnknownID(t *testing.T) {
	runForEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		called := false
		_, err := repo.Update(99, func(product *models.Product) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, models.ErrProductNotFound)
		assert.False(t, called)

		products, err := repo.GetAll()
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductRepository_UpdateAbortsOnApplyError(t *testing.T) {
	runForEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		p := &models.Product{Nome: "Meia", Preco: 9.9, QuantidadeEstoque: 40}
		require.NoError(t, repo.Create(p))

		applyErr := errors.New("rejected")
		_, err := repo.Update(p.ID, func(product *models.Product) error {
			product.Nome = "Changed before failing"
			return applyErr
		})
		assert.ErrorIs(t, err, applyErr)

		got, err := repo.GetByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Meia", got.Nome)
	})
}

func TestProductRepository_ConcurrentUpdatesKeepEveryField(t *testing.T) {
	runForEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		p := &models.Product{Nome: "Caneca", Preco: 25, QuantidadeEstoque: 3}
		require.NoError(t, repo.Create(p))

		const rounds = 20
		var wg sync.WaitGroup
		for i := 1; i <= rounds; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				_, err := repo.Update(p.ID, func(product *models.Product) error {
					product.Nome = fmt.Sprintf("Caneca %d", i)
					return nil
				})
				assert.NoError(t, err)
			}(i)
			go func() {
				defer wg.Done()
				_, err := repo.Update(p.ID, func(product *models.Product) error {
					product.QuantidadeEstoque++
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := repo.GetByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, 3+rounds, got.QuantidadeEstoque)
		assert.NotEqual(t, "Caneca", got.Nome)
	})
}
