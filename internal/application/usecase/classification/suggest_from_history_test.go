package classification

import (
	"testing"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

func TestSuggestZoneFromHistory(t *testing.T) {
	t.Run("no history returns no suggestion", func(t *testing.T) {
		if _, ok := SuggestZoneFromHistory("Starbucks", nil); ok {
			t.Error("expected no suggestion with empty history")
		}
	})

	t.Run("single prior categorization is not enough", func(t *testing.T) {
		history := []entity.MerchantZone{
			{MerchantName: "Starbucks", Zone: entity.ZoneYellow},
		}

		if _, ok := SuggestZoneFromHistory("Starbucks", history); ok {
			t.Error("expected no suggestion with one prior categorization")
		}
	})

	t.Run("two priors return the majority zone", func(t *testing.T) {
		history := []entity.MerchantZone{
			{MerchantName: "Starbucks", Zone: entity.ZoneYellow},
			{MerchantName: "Starbucks", Zone: entity.ZoneYellow},
		}

		zone, ok := SuggestZoneFromHistory("Starbucks", history)
		if !ok {
			t.Fatal("expected a suggestion with two prior categorizations")
		}
		if zone != entity.ZoneYellow {
			t.Errorf("expected %s, got %s", entity.ZoneYellow, zone)
		}
	})

	t.Run("majority wins over minority", func(t *testing.T) {
		history := []entity.MerchantZone{
			{MerchantName: "Shaws", Zone: entity.ZoneYellow},
			{MerchantName: "Shaws", Zone: entity.ZoneGreen},
			{MerchantName: "Shaws", Zone: entity.ZoneGreen},
		}

		zone, ok := SuggestZoneFromHistory("Shaws", history)
		if !ok {
			t.Fatal("expected a suggestion")
		}
		if zone != entity.ZoneGreen {
			t.Errorf("expected %s, got %s", entity.ZoneGreen, zone)
		}
	})

	t.Run("tie keeps the first zone encountered", func(t *testing.T) {
		history := []entity.MerchantZone{
			{MerchantName: "Target", Zone: entity.ZoneYellow},
			{MerchantName: "Target", Zone: entity.ZoneRed},
			{MerchantName: "Target", Zone: entity.ZoneRed},
			{MerchantName: "Target", Zone: entity.ZoneYellow},
		}

		zone, ok := SuggestZoneFromHistory("Target", history)
		if !ok {
			t.Fatal("expected a suggestion")
		}
		if zone != entity.ZoneYellow {
			t.Errorf("expected tie to resolve to first-encountered %s, got %s", entity.ZoneYellow, zone)
		}
	})

	t.Run("merchant match is exact, not substring", func(t *testing.T) {
		history := []entity.MerchantZone{
			{MerchantName: "Starbucks #123", Zone: entity.ZoneYellow},
			{MerchantName: "Starbucks #123", Zone: entity.ZoneYellow},
		}

		if _, ok := SuggestZoneFromHistory("Starbucks", history); ok {
			t.Error("expected no suggestion: history merchants differ from the query")
		}
	})

	t.Run("merchant match is case insensitive", func(t *testing.T) {
		history := []entity.MerchantZone{
			{MerchantName: "STARBUCKS", Zone: entity.ZoneYellow},
			{MerchantName: "starbucks", Zone: entity.ZoneYellow},
		}

		zone, ok := SuggestZoneFromHistory("Starbucks", history)
		if !ok {
			t.Fatal("expected a suggestion")
		}
		if zone != entity.ZoneYellow {
			t.Errorf("expected %s, got %s", entity.ZoneYellow, zone)
		}
	})

	t.Run("uncategorized priors are ignored", func(t *testing.T) {
		history := []entity.MerchantZone{
			{MerchantName: "Costco", Zone: entity.ZoneUncategorized},
			{MerchantName: "Costco", Zone: entity.ZoneGreen},
		}

		if _, ok := SuggestZoneFromHistory("Costco", history); ok {
			t.Error("expected no suggestion: only one substantive prior exists")
		}
	})

	t.Run("empty merchant name returns no suggestion", func(t *testing.T) {
		history := []entity.MerchantZone{
			{MerchantName: "", Zone: entity.ZoneGreen},
			{MerchantName: "", Zone: entity.ZoneGreen},
		}

		if _, ok := SuggestZoneFromHistory("", history); ok {
			t.Error("expected no suggestion for empty merchant name")
		}
	})
}
