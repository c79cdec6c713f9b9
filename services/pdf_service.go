package services

import (
	"bytes"
	"fmt"
	"math"
	"mountspa_server/pricing"
	"mountspa_server/structs"
	"sort"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters (A4 portrait)
const (
	pdfLeftMargin   = 20
	pdfContentWidth = 170
	pdfTopMargin    = 60
	pdfFooterBand   = 50 // reserved at the bottom of every page
	pdfRowHeight    = 10
	pdfTitleHeight  = 10
)

// Theme colors
var (
	pdfTeal   = [3]int{43, 95, 117}
	pdfOrange = [3]int{236, 140, 63}
)

// PDFService renders a configuration summary document. The layout is a
// vertical cursor over section bands and label/value rows; every element
// checks its extent against the footer boundary before drawing, so nothing
// ever straddles a page or bleeds into the footer.
type PDFService struct {
	logger *gecho.Logger
	config *structs.Config
}

func NewPDFService(logger *gecho.Logger, cfg *structs.Config) *PDFService {
	return &PDFService{
		logger: logger,
		config: cfg,
	}
}

// FileName returns the download name for a model's configuration document
func (ps *PDFService) FileName(modelName string) string {
	model := strings.TrimSpace(modelName)
	if model == "" {
		model = "SPA"
	}
	return fmt.Sprintf("MountSPA-%s-Konfiguracja.pdf", model)
}

// Generate renders the configuration document and returns the PDF bytes
func (ps *PDFService) Generate(details *structs.DocumentDetails) ([]byte, error) {
	if details == nil {
		return nil, fmt.Errorf("nothing to render")
	}

	doc := newPDFDocument(details)
	doc.renderHeader()
	doc.renderBasicConfiguration()
	doc.renderAdditionalFeatures()
	doc.renderPricingSummary()

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	ps.logger.Debug("Configuration document rendered",
		gecho.Field("model", details.ModelName),
		gecho.Field("pages", doc.pdf.PageCount()),
		gecho.Field("bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

type pdfDocument struct {
	pdf        *fpdf.Fpdf
	details    *structs.DocumentDetails
	y          float64
	pageHeight float64
}

func newPDFDocument(details *structs.DocumentDetails) *pdfDocument {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	doc := &pdfDocument{
		pdf:     pdf,
		details: details,
	}
	_, doc.pageHeight = pdf.GetPageSize()

	// The footer hook fires for every page, including the last one on Output
	pdf.SetFooterFunc(doc.renderFooter)
	pdf.AddPage()

	return doc
}

// ensureSpace opens a new page when the next element of the given height
// would cross into the footer band
func (d *pdfDocument) ensureSpace(height float64) {
	if d.y+height > d.pageHeight-pdfFooterBand {
		d.pdf.AddPage()
		d.y = pdfTopMargin
	}
}

func (d *pdfDocument) renderHeader() {
	pdf := d.pdf

	// Title band
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(pdfTeal[0], pdfTeal[1], pdfTeal[2])
	pdf.CellFormat(0, 30, "Konfiguracja Wanny SPA", "", 1, "C", false, 0, "")

	// Generation date
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	generated := fmt.Sprintf("Wygenerowano dnia: %s", time.Now().Format("02.01.2006"))
	pdf.CellFormat(0, 8, generated, "", 1, "C", false, 0, "")

	// Clickable configuration link
	if d.details.ConfigurationURL != "" {
		pdf.SetTextColor(0, 0, 255)
		pdf.CellFormat(0, 8, "Link do Twojej wanny", "", 1, "C", false, 0, d.details.ConfigurationURL)
		pdf.SetTextColor(0, 0, 0)
	}

	// Product heading
	pdf.SetFont("Helvetica", "", 16)
	pdf.SetTextColor(0, 0, 0)
	heading := fmt.Sprintf("Kolekcja %s - %s", d.details.Collection, d.details.ModelName)
	pdf.CellFormat(0, 10, heading, "", 1, "C", false, 0, "")

	// The header height varies with the optional link; content starts below
	// whatever was actually drawn
	d.y = math.Max(pdfTopMargin, pdf.GetY()+4)
}

// section draws a filled title band and advances the cursor
func (d *pdfDocument) section(title string) {
	d.ensureSpace(pdfTitleHeight + pdfRowHeight) // never orphan a title above the footer

	pdf := d.pdf
	pdf.SetFillColor(pdfTeal[0], pdfTeal[1], pdfTeal[2])
	pdf.Rect(pdfLeftMargin, d.y, pdfContentWidth, pdfTitleHeight, "F")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(pdfLeftMargin+5, d.y+7, title)

	d.y += pdfTitleHeight
}

// row draws one label/value line and advances the cursor
func (d *pdfDocument) row(label, value string) {
	d.ensureSpace(pdfRowHeight)

	pdf := d.pdf
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(pdfLeftMargin, d.y+5, label+":")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(pdfLeftMargin+100, d.y+5, value)
	pdf.SetFont("Helvetica", "", 11)

	d.y += pdfRowHeight
}

func (d *pdfDocument) renderBasicConfiguration() {
	d.section("PODSTAWOWA KONFIGURACJA")
	d.row("Kolor powloki", d.details.ShellColorName)
	d.row("Kolor obudowy", d.details.CabinetColorName)
	d.row("Miejsca siedzace", d.details.Seating)
	d.y += 10
}

func (d *pdfDocument) renderAdditionalFeatures() {
	details := d.details

	hasAccessory := false
	for _, accessory := range details.Accessories {
		if accessory.Selected {
			hasAccessory = true
			break
		}
	}

	if details.WaterCare == nil && details.Entertainment == nil &&
		details.Control == nil && !hasAccessory && details.ServicePackage == nil {
		return
	}

	d.section("DODATKOWE FUNKCJE")

	if details.WaterCare != nil {
		d.row("System pielegnacji wody", pricedValue(details.WaterCare))
	}
	if details.Entertainment != nil {
		d.row("System rozrywki", pricedValue(details.Entertainment))
	}
	if details.Control != nil {
		d.row("System sterowania", pricedValue(details.Control))
	}

	// Deterministic accessory order regardless of map iteration
	names := make([]string, 0, len(details.Accessories))
	for name := range details.Accessories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		accessory := details.Accessories[name]
		if !accessory.Selected {
			continue
		}
		d.row(name, fmt.Sprintf("Wybrano (+%s PLN)", pricing.GroupThousands(accessory.Price)))
	}

	if details.ServicePackage != nil {
		d.row("Pakiet serwisowy", pricedValue(details.ServicePackage))
	}

	d.y += 10
}

func pricedValue(option *structs.PricedOption) string {
	return fmt.Sprintf("%s (+%s PLN)", option.Name, pricing.GroupThousands(option.Price))
}

// additionalTotal sums exactly the line items the document prints, so the
// summary always matches the visible breakdown
func (d *pdfDocument) additionalTotal() float64 {
	details := d.details
	total := 0.0

	if details.WaterCare != nil {
		total += details.WaterCare.Price
	}
	if details.Entertainment != nil {
		total += details.Entertainment.Price
	}
	if details.Control != nil {
		total += details.Control.Price
	}
	for _, accessory := range details.Accessories {
		if accessory.Selected {
			total += accessory.Price
		}
	}
	if details.ServicePackage != nil {
		total += details.ServicePackage.Price
	}

	return total
}

func (d *pdfDocument) renderPricingSummary() {
	pdf := d.pdf
	details := d.details

	additional := d.additionalTotal()
	calculatedTotal := pricing.ParsePrice(details.BasePrice) + additional

	d.section("PODSUMOWANIE CENOWE")

	basePrice := details.BasePrice
	if !strings.Contains(basePrice, "PLN") {
		basePrice += " PLN"
	}
	d.row("Cena podstawowa", basePrice)
	d.row("Dodatkowe funkcje", pricing.GroupThousands(additional)+" PLN")

	// Highlighted grand total
	d.ensureSpace(20)
	d.y += 5
	pdf.SetDrawColor(pdfOrange[0], pdfOrange[1], pdfOrange[2])
	pdf.SetLineWidth(0.5)
	pdf.Line(pdfLeftMargin, d.y, pdfLeftMargin+pdfContentWidth, d.y)
	d.y += 5

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(pdfTeal[0], pdfTeal[1], pdfTeal[2])
	pdf.Text(pdfLeftMargin, d.y+5, "Cena calkowita:")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(pdfLeftMargin+100, d.y+5, pricing.GroupThousands(calculatedTotal)+" PLN")
	pdf.SetFont("Helvetica", "", 14)

	d.y += pdfRowHeight
}

// renderFooter draws the company contact block, contact button and page
// number on every page; the legal disclaimer appears on the first page only
func (d *pdfDocument) renderFooter() {
	pdf := d.pdf
	pageWidth, pageHeight := pdf.GetPageSize()
	footerY := pageHeight - 40

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(pdfTeal[0], pdfTeal[1], pdfTeal[2])
	pdf.Text(15, footerY, "MountSPA")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Text(15, footerY+5, "Szaflarska 8")
	pdf.Text(15, footerY+10, "34-400 Nowy Targ")
	pdf.Text(15, footerY+20, "info@mountspa.pl")
	pdf.Text(15, footerY+25, "+48 502 291 397")

	// Contact button
	btnWidth := 80.0
	btnHeight := 10.0
	btnX := pageWidth - btnWidth - 15
	btnY := footerY + 5

	pdf.SetFillColor(pdfOrange[0], pdfOrange[1], pdfOrange[2])
	pdf.Rect(btnX, btnY, btnWidth, btnHeight, "F")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(btnX, btnY+2)
	pdf.CellFormat(btnWidth, 6, "Kontakt do MountSPA", "", 0, "C", false, 0, "https://mountspa.pl/kontakt")

	if pdf.PageNo() == 1 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.SetXY(pdfLeftMargin, pageHeight-22)
		pdf.CellFormat(pdfContentWidth, 5,
			"Niniejsza symulacja nie stanowi oferty w rozumieniu art. 66 Kodeksu cywilnego.",
			"", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(pdfLeftMargin, pageHeight-12)
	footer := fmt.Sprintf("Dziekujemy za skonfigurowanie wanny SPA w Mount SPA  |  Strona %d/{nb}", pdf.PageNo())
	pdf.CellFormat(pdfContentWidth, 5, footer, "", 1, "C", false, 0, "")
}
