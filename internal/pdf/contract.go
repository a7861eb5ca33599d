// Package pdf exports a drafted contract as a paginated document: a
// fixed header, the reflowed body text, and a two-column signature
// block rendered only when at least one party has signed.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/atln0/GigBooker/internal/domain"
)

type ContractRenderer struct{}

func NewContractRenderer() *ContractRenderer {
	return &ContractRenderer{}
}

// Render produces the PDF bytes for a booking and its contract text.
func (r *ContractRenderer) Render(profile *domain.DJProfile, booking *domain.Booking, contractText string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	// Fixed header
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "DJ Performance Contract", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("%s / %s", profile.Name, booking.PromoterName), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Event: %s at %s | Total: %s %.2f",
		booking.EventDate, booking.Location, profile.Currency, booking.Total), "", 1, "C", false, 0, "")
	doc.Ln(4)
	doc.SetDrawColor(120, 120, 120)
	doc.Line(10, doc.GetY(), 200, doc.GetY())
	doc.Ln(6)

	// Body reflow; page breaks are automatic
	doc.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(contractText, "\n") {
		switch {
		case strings.HasPrefix(line, "#"):
			doc.SetFont("Helvetica", "B", 13)
			doc.MultiCell(0, 6, strings.TrimSpace(strings.TrimLeft(line, "#")), "", "L", false)
			doc.SetFont("Helvetica", "", 11)
		default:
			doc.MultiCell(0, 5, strings.ReplaceAll(line, "**", ""), "", "L", false)
		}
	}

	if booking.ArtistSigned || booking.ClientSigned {
		r.signatureBlock(doc, profile, booking)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// signatureBlock draws the two-column block: artist left, client
// right. Unsigned parties get an empty line instead of an image.
func (r *ContractRenderer) signatureBlock(doc *gofpdf.Fpdf, profile *domain.DJProfile, booking *domain.Booking) {
	doc.Ln(12)
	y := doc.GetY()
	if y > 240 {
		doc.AddPage()
		y = doc.GetY()
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(10, y)
	doc.CellFormat(90, 6, "Artist", "", 0, "L", false, 0, "")
	doc.SetXY(110, y)
	doc.CellFormat(90, 6, "Client / Promoter", "", 1, "L", false, 0, "")

	imageY := doc.GetY() + 2
	if booking.ArtistSigned {
		r.drawSignature(doc, "artist-signature", profile.SignatureURL, 10, imageY)
	}
	if booking.ClientSigned {
		r.drawSignature(doc, "client-signature", booking.ClientSignatureURL, 110, imageY)
	}

	lineY := imageY + 24
	doc.Line(10, lineY, 90, lineY)
	doc.Line(110, lineY, 190, lineY)

	doc.SetFont("Helvetica", "", 9)
	doc.SetXY(10, lineY+1)
	doc.CellFormat(80, 5, profile.Name, "", 0, "L", false, 0, "")
	doc.SetXY(110, lineY+1)
	doc.CellFormat(80, 5, booking.PromoterName, "", 1, "L", false, 0, "")
}

func (r *ContractRenderer) drawSignature(doc *gofpdf.Fpdf, name, dataURL string, x, y float64) {
	imageType, raw, err := decodeDataURL(dataURL)
	if err != nil {
		return
	}
	doc.RegisterImageOptionsReader(name,
		gofpdf.ImageOptions{ImageType: imageType},
		bytes.NewReader(raw),
	)
	doc.ImageOptions(name, x, y, 50, 20, false, gofpdf.ImageOptions{ImageType: imageType}, 0, "")
}

func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:image/")
	if !ok {
		return "", nil, fmt.Errorf("not an image data URL")
	}
	imageType, encoded, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}
	switch imageType {
	case "png", "jpeg", "jpg", "gif":
		return strings.ToUpper(imageType), raw, nil
	default:
		return "", nil, fmt.Errorf("unsupported image type %q", imageType)
	}
}
