package dish_test

import (
	"testing"

	"diner/internal/core/domain/model/dish"
	"diner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDish(t *testing.T) {
	t.Run("should create a valid dish", func(t *testing.T) {
		d, err := dish.NewDish("d-1", "Broiled salmon", "With capers", 19, "https://example.com/salmon.jpg")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "d-1", d.ID())
		assert.Equal(t, "Broiled salmon", d.Name())
		assert.Equal(t, "With capers", d.Description())
		assert.Equal(t, 19, d.Price())
		assert.Equal(t, "https://example.com/salmon.jpg", d.ImageURL())
	})

	t.Run("should reject an empty id", func(t *testing.T) {
		_, err := dish.NewDish("", "Salmon", "Fish", 19, "img")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty required fields", func(t *testing.T) {
		cases := []struct {
			name        string
			dishName    string
			description string
			imageURL    string
		}{
			{"empty name", "", "Fish", "img"},
			{"empty description", "Salmon", "", "img"},
			{"empty image url", "Salmon", "Fish", ""},
		}

		for _, tc := range cases {
			t.Run("should reject "+tc.name, func(t *testing.T) {
				_, err := dish.NewDish("d-1", tc.dishName, tc.description, 19, tc.imageURL)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("should reject non-positive prices", func(t *testing.T) {
		for _, price := range []int{0, -1, -100} {
			_, err := dish.NewDish("d-1", "Salmon", "Fish", price, "img")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestDish_Validate(t *testing.T) {
	t.Run("should reject a dish that bypassed the constructor", func(t *testing.T) {
		var d dish.Dish

		require.ErrorIs(t, d.Validate(), dish.ErrDishIsNotConstructed)
	})

	t.Run("should reject a nil dish", func(t *testing.T) {
		var d *dish.Dish

		require.ErrorIs(t, d.Validate(), dish.ErrDishIsNotConstructed)
	})
}

func TestDish_Update(t *testing.T) {
	t.Run("should overwrite every field except the id", func(t *testing.T) {
		d, err := dish.NewDish("d-1", "Salmon", "Fish", 19, "img")
		require.NoError(t, err)

		require.NoError(t, d.Update("Trout", "Another fish", 12, "img2"))

		assert.Equal(t, "d-1", d.ID())
		assert.Equal(t, "Trout", d.Name())
		assert.Equal(t, "Another fish", d.Description())
		assert.Equal(t, 12, d.Price())
		assert.Equal(t, "img2", d.ImageURL())
	})

	t.Run("should be idempotent for identical values", func(t *testing.T) {
		d, err := dish.NewDish("d-1", "Salmon", "Fish", 19, "img")
		require.NoError(t, err)

		require.NoError(t, d.Update("Salmon", "Fish", 19, "img"))

		assert.Equal(t, "Salmon", d.Name())
		assert.Equal(t, 19, d.Price())
	})

	t.Run("should leave the dish unchanged on a failed update", func(t *testing.T) {
		d, err := dish.NewDish("d-1", "Salmon", "Fish", 19, "img")
		require.NoError(t, err)

		require.Error(t, d.Update("", "Another fish", 0, "img2"))

		assert.Equal(t, "Salmon", d.Name())
		assert.Equal(t, "Fish", d.Description())
		assert.Equal(t, 19, d.Price())
		assert.Equal(t, "img", d.ImageURL())
	})
}

func TestDish_IsEqual(t *testing.T) {
	t.Run("should compare by id", func(t *testing.T) {
		a, _ := dish.NewDish("d-1", "Salmon", "Fish", 19, "img")
		b, _ := dish.NewDish("d-1", "Trout", "Other", 12, "img2")
		c, _ := dish.NewDish("d-2", "Salmon", "Fish", 19, "img")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}
