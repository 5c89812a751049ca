package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Domenick1991/airportbooking/internal/domain"
)

// Generator writes booking and cancellation receipts as fixed-layout text
// files. Filenames are deterministic, so regenerating a receipt silently
// overwrites the previous artifact at the same path.
type Generator struct {
	dir string
}

func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir}
}

type BookingReceipt struct {
	ReceiptID  string
	Username   string
	Flight     *domain.Flight
	Seats      int
	TotalCents int64
}

type CancellationReceipt struct {
	BookingID     int64
	Username      string
	Flight        *domain.Flight
	Seats         int
	TotalCents    int64
	RefundedCents int64
	Reason        string
	CancelledAt   time.Time
}

const divider = "----------------------------------\n"

// WriteBooking renders a booking receipt and returns the artifact path.
func (g *Generator) WriteBooking(r BookingReceipt) (string, error) {
	var b strings.Builder
	writeBanner(&b, "BOOKING RECEIPT")
	fmt.Fprintf(&b, "Receipt ID   : %s\n", r.ReceiptID)
	fmt.Fprintf(&b, "Username     : %s\n", r.Username)
	if r.Flight != nil {
		fmt.Fprintf(&b, "Flight ID    : %s\n", r.Flight.ID)
		fmt.Fprintf(&b, "Source       : %s\n", r.Flight.Source)
		fmt.Fprintf(&b, "Destination  : %s\n", r.Flight.Destination)
		fmt.Fprintf(&b, "Price/Seat   : %s\n", domain.FormatPrice(r.Flight.PriceCents))
		fmt.Fprintf(&b, "Seats Booked : %d\n", r.Seats)
	}
	fmt.Fprintf(&b, "Total Cost   : %s\n", domain.FormatPrice(r.TotalCents))
	writeFooter(&b)

	name := fmt.Sprintf("BookingReceipt_%s_%s.txt", r.Username, r.ReceiptID)
	return g.write(name, b.String())
}

// WriteCancellation renders a cancellation receipt and returns the artifact
// path. The filename carries the original booking id for easy lookup.
func (g *Generator) WriteCancellation(r CancellationReceipt) (string, error) {
	var b strings.Builder
	writeBanner(&b, "CANCELLATION RECEIPT")
	fmt.Fprintf(&b, "Original Booking ID: %d\n", r.BookingID)
	fmt.Fprintf(&b, "Username           : %s\n", r.Username)
	if r.Flight != nil {
		fmt.Fprintf(&b, "Flight ID          : %s\n", r.Flight.ID)
		fmt.Fprintf(&b, "Source             : %s\n", r.Flight.Source)
		fmt.Fprintf(&b, "Destination        : %s\n", r.Flight.Destination)
	}
	fmt.Fprintf(&b, "Seats Cancelled    : %d\n", r.Seats)
	fmt.Fprintf(&b, "Original Amount    : %s\n", domain.FormatPrice(r.TotalCents))
	fmt.Fprintf(&b, "Amount Refunded    : %s\n", domain.FormatPrice(r.RefundedCents))
	fmt.Fprintf(&b, "Reason             : %s\n", r.Reason)
	fmt.Fprintf(&b, "Cancellation on    : %s\n", r.CancelledAt.Format("2006-01-02 15:04:05"))
	writeFooter(&b)

	name := fmt.Sprintf("CancellationReceipt_%s_BID%d.txt", r.Username, r.BookingID)
	return g.write(name, b.String())
}

func (g *Generator) write(name, content string) (string, error) {
	if g.dir != "" {
		if err := os.MkdirAll(g.dir, 0o755); err != nil {
			return "", fmt.Errorf("create receipts dir: %w", err)
		}
	}
	path := filepath.Join(g.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return path, nil
}

func writeBanner(b *strings.Builder, title string) {
	b.WriteString(divider)
	b.WriteString("     AIRPORT MANAGEMENT SYSTEM\n")
	b.WriteString(divider)
	pad := (34 - len(title)) / 2
	fmt.Fprintf(b, "%*s%s\n", pad, "", title)
	b.WriteString(divider)
}

func writeFooter(b *strings.Builder) {
	b.WriteString(divider)
	b.WriteString("Thank you for choosing our service!\n")
}
