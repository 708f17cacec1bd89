package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionCatalog(t *testing.T) {
	entries := map[string]string{"Churn": "x"}
	catalog := NewDescriptionCatalog(entries)
	entries["Churn"] = "changed"

	assert.Equal(t, "x", catalog.Lookup("Churn"), "the catalog copies its entries")
	assert.Equal(t, "", catalog.Lookup("Foo"))
	assert.Equal(t, "", catalog.Lookup("churn"))
	assert.Equal(t, 1, catalog.Len())
}

func TestECommerceDescriptions(t *testing.T) {
	catalog := ECommerceDescriptions()
	assert.Equal(t, 20, catalog.Len())
	for _, name := range []string{"CustomerID", "Churn", "Tenure", "CashbackAmount", "DaySinceLastOrder"} {
		assert.NotEmpty(t, catalog.Lookup(name), name)
	}
}

func TestECommerceCategoricals(t *testing.T) {
	names := ECommerceCategoricals()
	assert.Len(t, names, 7)
	assert.Contains(t, names, "Gender")
	assert.Contains(t, names, "Complain")
	assert.NotContains(t, names, "Churn")
}
