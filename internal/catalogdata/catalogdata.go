// Package catalogdata holds the static site data: the tile catalog, the
// dealer network and the FAQ. The data ships embedded in the binary and
// is decoded once at startup; it is never written at runtime.
package catalogdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/origintiles/storefront/internal/platform/models"
)

//go:embed products.json dealers.json faq.json
var files embed.FS

// Data is the decoded static site data.
type Data struct {
	Products []models.Product
	Dealers  []models.Dealer
	FAQ      []models.FAQ
}

// Load decodes the embedded data files.
func Load() (*Data, error) {
	var data Data

	if err := decode("products.json", &data.Products); err != nil {
		return nil, fmt.Errorf("can't load products: %w", err)
	}
	if err := decode("dealers.json", &data.Dealers); err != nil {
		return nil, fmt.Errorf("can't load dealers: %w", err)
	}
	if err := decode("faq.json", &data.FAQ); err != nil {
		return nil, fmt.Errorf("can't load faq: %w", err)
	}

	return &data, nil
}

func decode(name string, out any) error {
	file, err := files.Open(name)
	if err != nil {
		return fmt.Errorf("can't open %s: %w", name, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("can't decode %s: %w", name, err)
	}

	return nil
}

// Product returns the catalog product with the given id.
func (d *Data) Product(id string) (models.Product, bool) {
	for _, product := range d.Products {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}

// Dealer returns the dealer with the given id.
func (d *Data) Dealer(id string) (models.Dealer, bool) {
	for _, dealer := range d.Dealers {
		if dealer.ID == id {
			return dealer, true
		}
	}
	return models.Dealer{}, false
}
