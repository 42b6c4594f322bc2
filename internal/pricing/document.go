package pricing

import (
	"github.com/BerryBytes/awsaudit/models"
	"github.com/tidwall/gjson"
)

// ParsePriceDocument extracts the on-demand hourly USD rate from one Pricing
// API price list entry. The rate is read from the first OnDemand term and the
// first of its price dimensions. ok is false when the document carries no
// USD rate.
func ParsePriceDocument(doc string) (models.Price, bool) {
	if !gjson.Valid(doc) {
		return models.Price{}, false
	}

	root := gjson.Parse(doc)

	term := first(root.Get("terms.OnDemand"))
	if !term.Exists() {
		return models.Price{}, false
	}

	dimension := first(term.Get("priceDimensions"))
	usd := dimension.Get("pricePerUnit.USD")
	if !usd.Exists() {
		return models.Price{}, false
	}

	return models.Price{
		USDPerHour:      usd.Float(),
		PublicationDate: root.Get("publicationDate").String(),
		Found:           true,
	}, true
}

func first(obj gjson.Result) gjson.Result {
	var out gjson.Result
	obj.ForEach(func(_, value gjson.Result) bool {
		out = value
		return false
	})
	return out
}
