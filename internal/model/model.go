package model

import (
	"strings"
	"time"
)

// ArtPosition is the orientation of a commissioned piece.
type ArtPosition string

const (
	PositionPortrait  ArtPosition = "Portrait"
	PositionLandscape ArtPosition = "Landscape"
)

// Order status values. Submitted is the only status assigned on creation;
// the rest are set through the admin edit path.
const (
	StatusSubmitted  = "Submitted"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusDelivered  = "Delivered"
)

// Sheet sizes offered on the submission form.
const (
	SheetA3 = "A3"
	SheetA4 = "A4"
	SheetA5 = "A5"
)

// Frame choices offered on the submission form.
const (
	WithFrame    = "With Frame"
	WithoutFrame = "Without Frame"
)

// User is a registered visitor. Passwords are stored and compared in
// plaintext: the login contract is exact equality against the stored value.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	Age        int       `json:"age"`
	Username   string    `json:"username"`
	Password   string    `json:"password"`
	SignupDate time.Time `json:"signupDate"`
}

// Order is one art submission. Image, when present, is a base64 data URL.
// ArtPrize is derived from ArtPosition but only on the admin edit path, so a
// freshly submitted order carries no price until first edited.
type Order struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Gender       string      `json:"gender"`
	Phone        string      `json:"phone"`
	SheetSize    string      `json:"sheetSize"`
	ArtPosition  ArtPosition `json:"artPosition"`
	WhichMembers string      `json:"whichMembers"`
	Frames       string      `json:"frames"`
	Status       string      `json:"status"`
	Date         time.Time   `json:"date"`
	Image        string      `json:"image,omitempty"`
	ArtPrize     int64       `json:"artPrize,omitempty"`
}

// GalleryItem is one published piece.
type GalleryItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Image       string    `json:"image,omitempty"`
}

// QRAssets is a fixed-shape singleton, not a collection: one optional image
// slot per orientation.
type QRAssets struct {
	Portrait  *string `json:"portrait"`
	Landscape *string `json:"landscape"`
}

// PriceFor derives the order price from its position: Portrait is 500,
// anything else is 800.
func PriceFor(p ArtPosition) int64 {
	if p == PositionPortrait {
		return 500
	}
	return 800
}

// NormalizePhone strips everything but digits from raw and prepends prefix.
func NormalizePhone(raw string, prefix string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return prefix + b.String()
}

const displayDefault = "N/A"

func orDefault(s string) string {
	if s == "" {
		return displayDefault
	}
	return s
}

// WithDisplayDefaults returns a copy with absent optional text fields
// replaced by "N/A". Applied once at the read boundary; render code never
// substitutes defaults itself.
func (o Order) WithDisplayDefaults() Order {
	o.Name = orDefault(o.Name)
	o.Gender = orDefault(o.Gender)
	o.Phone = orDefault(o.Phone)
	o.SheetSize = orDefault(o.SheetSize)
	o.ArtPosition = ArtPosition(orDefault(string(o.ArtPosition)))
	o.WhichMembers = orDefault(o.WhichMembers)
	o.Frames = orDefault(o.Frames)
	if o.Status == "" {
		o.Status = StatusSubmitted
	}
	return o
}

// WithDisplayDefaults returns a copy with an absent description left empty
// (matching the gallery card, which renders nothing) and other text fields
// defaulted.
func (g GalleryItem) WithDisplayDefaults() GalleryItem {
	g.Title = orDefault(g.Title)
	g.Category = orDefault(g.Category)
	return g
}
