package compare

import (
	"strconv"

	"github.com/origintiles/storefront/internal/platform/models"
)

// missingValue is rendered for attributes a product does not define.
const missingValue = "—"

// Attribute is one row of the comparison table.
type Attribute string

// Comparison attributes, in table order.
const (
	AttrBrand           Attribute = "brand"
	AttrCategory        Attribute = "category"
	AttrSize            Attribute = "size"
	AttrFinish          Attribute = "finishing"
	AttrPrice           Attribute = "price"
	AttrColor           Attribute = "color"
	AttrThickness       Attribute = "thickness"
	AttrWaterAbsorption Attribute = "waterAbsorption"
	AttrSlipResistance  Attribute = "slipResistance"
	AttrUsage           Attribute = "usage"
)

var attributeLabels = map[Attribute]string{
	AttrBrand:           "Brand",
	AttrCategory:        "Category",
	AttrSize:            "Size",
	AttrFinish:          "Finishing",
	AttrPrice:           "Price",
	AttrColor:           "Color",
	AttrThickness:       "Thickness",
	AttrWaterAbsorption: "Water Absorption",
	AttrSlipResistance:  "Slip Resistance",
	AttrUsage:           "Usage",
}

// Attributes returns the ten comparison attributes in table order.
func Attributes() []Attribute {
	return []Attribute{
		AttrBrand,
		AttrCategory,
		AttrSize,
		AttrFinish,
		AttrPrice,
		AttrColor,
		AttrThickness,
		AttrWaterAbsorption,
		AttrSlipResistance,
		AttrUsage,
	}
}

// Label returns the display label of the attribute.
func (a Attribute) Label() string {
	if label, ok := attributeLabels[a]; ok {
		return label
	}
	return string(a)
}

// Value renders the attribute of product for the comparison table.
// Missing values render as a dash, prices as plain numbers.
func Value(product models.Product, attribute Attribute) string {
	switch attribute {
	case AttrBrand:
		return orDash(product.Brand)
	case AttrCategory:
		return orDash(product.Category)
	case AttrSize:
		return orDash(product.Size)
	case AttrFinish:
		return orDash(product.Finish)
	case AttrPrice:
		if product.Price == nil {
			return missingValue
		}
		return strconv.FormatFloat(*product.Price, 'f', -1, 64)
	case AttrColor:
		return orDashPtr(product.Color)
	case AttrThickness:
		return orDashPtr(product.Thickness)
	case AttrWaterAbsorption:
		return orDashPtr(product.WaterAbsorption)
	case AttrSlipResistance:
		return orDashPtr(product.SlipResistance)
	case AttrUsage:
		return orDashPtr(product.Usage)
	default:
		return missingValue
	}
}

func orDash(value string) string {
	if value == "" {
		return missingValue
	}
	return value
}

func orDashPtr(value *string) string {
	if value == nil || *value == "" {
		return missingValue
	}
	return *value
}
