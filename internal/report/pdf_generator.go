package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/jung-kurt/gofpdf"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/series"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// ReportImage is a rendered chart placed in the report.
type ReportImage struct {
	Key     string
	Title   string
	Caption string
	PNG     []byte
}

// ReportInput is everything the PDF report shows.
type ReportInput struct {
	Title    string
	Kind     o3as.PlotKind
	Bundle   *series.Bundle
	Warnings []string
	Images   []ReportImage
}

// pdfStyler holds reusable styling and the flowing Y position.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageHeight:  pdfPageHeightLandscape - pdfMargin,
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0x43, 0x50, 0xaf)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["warning"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(160, 80, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
		return
	}
	s.styles["normal"]()
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.newPage()
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	lines := s.pdf.SplitText(text, pdfContentWidth)
	s.checkAddPage(float64(max(len(lines), 1)) * s.lineHeight)

	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(img ReportImage, width, height float64) {
	s.pdf.RegisterImageOptionsReader(img.Key, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img.PNG))
	if err := s.pdf.Error(); err != nil {
		log.Warn("skipping unreadable chart image", "key", img.Key, "err", err)
		s.pdf.ClearError()
		s.writeParagraph(fmt.Sprintf("Chart %s not available.", img.Title), "normal", "L")
		return
	}

	captionHeight := 0.0
	if img.Caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.ImageOptions(img.Key, pdfMargin, s.currentY, width, height, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	s.currentY += height

	if img.Caption != "" {
		s.addSpacer(1)
		s.writeParagraph(img.Caption, "normal", "C")
	}
	s.addSpacer(2)
}

// styleTable lists every series with its colour, width and dash pattern.
func (s *pdfStyler) styleTable(bundle *series.Bundle) {
	headers := []string{"Series", "Type", "Colour", "Width", "Dash"}
	colWidthsRel := []float64{0.45, 0.15, 0.2, 0.1, 0.1}
	colWidths := make([]float64, len(colWidthsRel))
	for i, rel := range colWidthsRel {
		colWidths[i] = rel * pdfContentWidth
	}

	header := func() {
		s.applyStyle("tableHeader")
		x := pdfMargin
		for i, h := range headers {
			s.pdf.SetXY(x, s.currentY)
			s.pdf.CellFormat(colWidths[i], s.lineHeight, h, "1", 0, "C", true, 0, "")
			x += colWidths[i]
		}
		s.currentY += s.lineHeight
	}

	s.checkAddPage(2 * s.lineHeight)
	header()
	for i, sr := range bundle.Data {
		if s.currentY+s.lineHeight > s.pageHeight {
			s.newPage()
			header()
		}
		colour := bundle.Styling.Colors[i]
		label := colour
		if label == "" {
			label = "default"
		}
		row := []string{
			sr.Name,
			string(sr.Type),
			label,
			strconv.Itoa(bundle.Styling.Width[i]),
			strconv.Itoa(bundle.Styling.DashArray[i]),
		}

		x := pdfMargin
		for j, cell := range row {
			s.applyStyle("tableCell")
			fill := false
			if j == 2 {
				if c, ok := parseHexColor(colour); ok {
					r, g, b := rgbOf(c)
					s.pdf.SetFillColor(r, g, b)
					if r+g+b < 3*128 {
						s.pdf.SetTextColor(255, 255, 255)
					}
					fill = true
				}
			}
			s.pdf.SetXY(x, s.currentY)
			s.pdf.CellFormat(colWidths[j], s.lineHeight, cell, "1", 0, "C", fill, 0, "")
			x += colWidths[j]
		}
		s.currentY += s.lineHeight
	}
}

// WritePDFReport writes the report to w.
func WritePDFReport(w io.Writer, in ReportInput) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph(in.Title, "h1", "C")
	styler.writeParagraph(fmt.Sprintf("Plot: %s", in.Kind), "normal", "C")
	styler.addSpacer(5)

	if in.Bundle == nil || in.Bundle.Len() == 0 {
		styler.writeParagraph("No series selected.", "normal", "L")
	} else {
		if err := in.Bundle.Verify(); err != nil {
			return err
		}
		styler.writeParagraph("Series", "h2", "L")
		styler.styleTable(in.Bundle)
		styler.addSpacer(5)
	}

	if len(in.Warnings) > 0 {
		styler.writeParagraph("Warnings", "h2", "L")
		for _, warning := range in.Warnings {
			styler.writeParagraph("- "+warning, "warning", "L")
		}
		styler.addSpacer(5)
	}

	imgWidth := pdfContentWidth * 0.9
	imgHeight := imgWidth / 2
	for _, img := range in.Images {
		styler.newPage()
		styler.writeParagraph(img.Title, "h2", "L")
		if len(img.PNG) == 0 {
			styler.writeParagraph(fmt.Sprintf("Chart %s not available.", img.Title), "normal", "L")
			continue
		}
		styler.addImage(img, imgWidth, imgHeight)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// BuildPDFReport creates the PDF report at filepath.
func BuildPDFReport(filepath string, in ReportInput) error {
	var buf bytes.Buffer
	if err := WritePDFReport(&buf, in); err != nil {
		return err
	}
	if err := os.WriteFile(filepath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to save PDF %s: %w", filepath, err)
	}
	return nil
}
