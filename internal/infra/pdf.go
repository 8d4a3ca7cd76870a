package infra

// pdf.go — sale receipt (comprobante) generation using go-pdf/fpdf.
// Thermal receipt-style A7 layout:
//   - Business name and tagline (from parametros_sistema when present)
//   - Sale id, date, cashier and client
//   - Item table (product name, quantity, subtotal, per-line discount)
//   - Discount, IVA and bold total lines
//   - Payment method
//
// The output file is saved to storagePath/comprobante_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"dalctmarket/internal/model"

	"github.com/go-pdf/fpdf"
)

// DatosNegocio is the header block of the receipt, sourced from
// parametros_sistema with sensible fallbacks.
type DatosNegocio struct {
	Nombre    string
	Direccion string
	Telefono  string
}

// GenerarComprobantePDF renders a completed or annulled Venta to a PDF file
// and returns its absolute path. storagePath is created if needed.
func GenerarComprobantePDF(venta *model.Venta, negocio DatosNegocio, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("comprobante_%s.pdf", venta.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 130},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	nombre := negocio.Nombre
	if nombre == "" {
		nombre = "DALCT Market"
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, nombre, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Venta", "", 1, "C", false, 0, "")
	if negocio.Direccion != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW, 4, negocio.Direccion, "", 1, "C", false, 0, "")
	}
	if negocio.Telefono != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW, 4, "Tel: "+negocio.Telefono, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	// ── Venta info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Venta %s", venta.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.FechaVenta.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if venta.Cliente != nil {
		pdf.CellFormat(contentW, 4, "Cliente: "+venta.Cliente.Nombre+" "+venta.Cliente.Apellido, "", 1, "L", false, 0, "")
	}
	if venta.Estado == model.VentaAnulada {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(contentW, 5, "*** ANULADA ***", "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ─────────────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.38 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, det := range venta.Detalles {
		nombreProd := ""
		if det.Producto != nil {
			nombreProd = det.Producto.Nombre
		}
		if len(nombreProd) > 20 {
			nombreProd = nombreProd[:19] + "…"
		}
		pdf.CellFormat(col1, 5, nombreProd, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", det.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+det.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		if !det.ValorDescuento.IsZero() {
			pdf.CellFormat(col1+col2, 4, "  promo", "", 0, "L", false, 0, "")
			pdf.CellFormat(col3, 4, "-$"+det.ValorDescuento.StringFixed(2), "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, "$"+venta.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	if !venta.TotalDescuento.IsZero() {
		pdf.CellFormat(col1+col2, 4, "Descuento:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "-$"+venta.TotalDescuento.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if !venta.TotalIVA.IsZero() {
		pdf.CellFormat(col1+col2, 4, fmt.Sprintf("IVA (%s%%):", venta.BaseIVA.StringFixed(0)), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "$"+venta.TotalIVA.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+venta.TotalPagar.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Pago:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, venta.MetodoPago, "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
