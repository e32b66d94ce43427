package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/samber/lo"
)

var (
	categories = []string{"Floor Tiles", "Wall Tiles", "Outdoor Tiles"}
	finishes   = []string{"Glossy", "Matt", "Satin", "Textured"}
	sizes      = []string{"600x600mm", "800x800mm", "300x600mm", "600x1200mm"}

	dealerTypes = []models.DealerType{
		models.TypeFlagshipShowroom,
		models.TypeExclusiveShowroom,
		models.TypeAuthorizedDealer,
		models.TypeDistributor,
		models.TypePartnerStore,
		models.TypeExperienceCenter,
	}
	dealerCategories = []models.DealerCategory{
		models.CategoryShowroom,
		models.CategoryDealer,
		models.CategoryDistributor,
	}
)

// FakeProduct returns models.Product with fake data.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:          fmt.Sprintf("%d", rand.Intn(10000)),
		Name:        faker.Word(),
		Brand:       faker.Word(),
		Category:    categories[rand.Intn(len(categories))],
		Finish:      finishes[rand.Intn(len(finishes))],
		Size:        sizes[rand.Intn(len(sizes))],
		Description: faker.Sentence(),
		ImageURL:    faker.URL(),
		Price:       lo.ToPtr(float64(rand.Intn(200) + 40)),
		Color:       lo.ToPtr(faker.Word()),
		Thickness:   lo.ToPtr("9mm"),
		Usage:       lo.ToPtr(faker.Word()),
		Specifications: map[string]string{
			faker.Word(): faker.Word(),
		},
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeDealer returns models.Dealer with fake data.
func FakeDealer(ops ...func(d *models.Dealer)) models.Dealer {
	dealer := models.Dealer{
		ID:        fmt.Sprintf("%d", rand.Intn(10000)),
		Name:      faker.Name(),
		Type:      dealerTypes[rand.Intn(len(dealerTypes))],
		Category:  dealerCategories[rand.Intn(len(dealerCategories))],
		Country:   faker.Word(),
		State:     faker.Word(),
		District:  faker.Word(),
		City:      faker.Word(),
		Address:   faker.Sentence(),
		Pincode:   fmt.Sprintf("%06d", rand.Intn(1000000)),
		Latitude:  float64(faker.Latitude()),
		Longitude: float64(faker.Longitude()),
		Phone:     faker.Phonenumber(),
		Email:     faker.Email(),
		Rating:    float64(rand.Intn(50)) / 10,
		Reviews:   rand.Intn(500),
		Services:  []string{faker.Word(), faker.Word()},
		Languages: []string{faker.Word()},
	}

	for _, op := range ops {
		op(&dealer)
	}

	return dealer
}

// FakeChatMessage returns models.ChatMessage with fake data.
func FakeChatMessage(ops ...func(m *models.ChatMessage)) models.ChatMessage {
	message := models.ChatMessage{
		ID:        fmt.Sprintf("%d", time.Now().UnixMilli()-int64(rand.Intn(100000))),
		Text:      faker.Sentence(),
		Sender:    models.SenderUser,
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		Status:    models.StatusRead,
	}

	for _, op := range ops {
		op(&message)
	}

	return message
}
