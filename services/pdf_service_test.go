package services

import (
	"bytes"
	"testing"

	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
)

func fixtureDocumentDetails() *structs.DocumentDetails {
	return &structs.DocumentDetails{
		ModelName:        "Monarch",
		Collection:       "Utopia",
		ShellColorName:   "Alpine White",
		CabinetColorName: "Parchment",
		Seating:          "6 Adults",
		BasePrice:        "45,000",
		TotalPrice:       "52 100 zł brutto",
		WaterCare:        &structs.PricedOption{Name: "FreshWater Salt System", Price: 3500},
		Accessories: map[string]structs.AccessoryState{
			"Cover Lifter": {Selected: true, Price: 1200},
		},
		ServicePackage:   &structs.PricedOption{Name: "Premium Care", Price: 2400},
		ConfigurationURL: "https://mountspa.pl/configurator/utopia-monarch?config=abc",
	}
}

func TestGenerate_ProducesPDF(t *testing.T) {
	ps := NewPDFService(gecho.NewDefaultLogger(), &structs.Config{})

	data, err := ps.Generate(fixtureDocumentDetails())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output lacks PDF header, starts with %q", data[:min(8, len(data))])
	}
	if len(data) < 1000 {
		t.Fatalf("suspiciously small document: %d bytes", len(data))
	}
}

func TestGenerate_NilDetails(t *testing.T) {
	ps := NewPDFService(gecho.NewDefaultLogger(), &structs.Config{})

	if _, err := ps.Generate(nil); err == nil {
		t.Fatal("nil details must error")
	}
}

func TestGenerate_MinimalDetails(t *testing.T) {
	ps := NewPDFService(gecho.NewDefaultLogger(), &structs.Config{})

	data, err := ps.Generate(&structs.DocumentDetails{
		ModelName:  "Aruba",
		Collection: "Paradise",
		BasePrice:  "32,500",
		TotalPrice: "32 500 zł brutto",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output lacks PDF header")
	}
}

func TestRenderHeader_ContentStartsBelowHeader(t *testing.T) {
	// With the configuration link present the header is at its tallest; the
	// first section band must still begin below it.
	doc := newPDFDocument(fixtureDocumentDetails())
	doc.renderHeader()

	if headerEnd := doc.pdf.GetY(); doc.y < headerEnd {
		t.Fatalf("content cursor %v starts above the header end %v", doc.y, headerEnd)
	}

	withoutLink := fixtureDocumentDetails()
	withoutLink.ConfigurationURL = ""
	doc = newPDFDocument(withoutLink)
	doc.renderHeader()

	if doc.y < pdfTopMargin {
		t.Fatalf("content cursor %v above the top margin %v", doc.y, float64(pdfTopMargin))
	}
}

func TestFileName(t *testing.T) {
	ps := NewPDFService(gecho.NewDefaultLogger(), &structs.Config{})

	if got := ps.FileName("Monarch"); got != "MountSPA-Monarch-Konfiguracja.pdf" {
		t.Fatalf("FileName = %q", got)
	}
	if got := ps.FileName("  "); got != "MountSPA-SPA-Konfiguracja.pdf" {
		t.Fatalf("FileName for blank model = %q", got)
	}
}

func TestAdditionalTotal_SumsPrintedItems(t *testing.T) {
	doc := newPDFDocument(fixtureDocumentDetails())

	// 3500 + 1200 + 2400; the grand total must match what the document
	// actually lists, not a total computed elsewhere.
	if got := doc.additionalTotal(); got != 7100 {
		t.Fatalf("additionalTotal = %v, want 7100", got)
	}
}

func TestAdditionalTotal_SkipsUnselectedAccessories(t *testing.T) {
	details := fixtureDocumentDetails()
	details.Accessories["Steps"] = structs.AccessoryState{Selected: false, Price: 800}
	doc := newPDFDocument(details)

	if got := doc.additionalTotal(); got != 7100 {
		t.Fatalf("additionalTotal = %v, want 7100", got)
	}
}
