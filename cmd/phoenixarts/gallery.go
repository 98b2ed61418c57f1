package main

import (
	"flag"
	"fmt"
	"time"

	"phoenixarts/internal/ident"
	"phoenixarts/internal/model"
	"phoenixarts/internal/session"
)

func (a *app) home() error {
	ok, err := a.gate(session.PageRegular)
	if err != nil || !ok {
		return err
	}
	items, err := a.cat.HomeGallery()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("gallery is empty")
		return nil
	}
	for _, g := range items {
		d := g.WithDisplayDefaults()
		fmt.Printf("%s  %-25s %s\n", d.ID, d.Title, d.Description)
	}
	return nil
}

func (a *app) gallery() error {
	ok, err := a.gate(session.PageRegular)
	if err != nil || !ok {
		return err
	}
	items, err := a.cat.Gallery()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("gallery is empty")
		return nil
	}
	for _, g := range items {
		d := g.WithDisplayDefaults()
		fmt.Printf("%s  %-25s %-12s %s\n", d.ID, d.Title, d.Category, ident.FormatDate(g.Date))
	}
	return nil
}

func (a *app) galleryPut(args []string) error {
	fs := flag.NewFlagSet("gallery-put", flag.ContinueOnError)
	id := fs.String("id", "", "item id (empty creates a new item)")
	title := fs.String("title", "", "title")
	description := fs.String("description", "", "description")
	category := fs.String("category", "", "category")
	image := fs.String("image", "", "path to image (empty keeps the existing image when editing)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}

	item := model.GalleryItem{
		ID:          *id,
		Title:       *title,
		Description: *description,
		Category:    *category,
		Date:        time.Now().UTC(),
	}
	if item.ID == "" {
		item.ID = ident.NewID()
	}
	if *image != "" {
		encoded, err := ident.EncodeImage(*image)
		if err != nil {
			return err
		}
		item.Image = encoded
	} else if *id != "" {
		// Editing without a new upload keeps the stored image.
		existing, found, err := a.cat.FindGalleryItem(*id)
		if err != nil {
			return err
		}
		if found {
			item.Image = existing.Image
		}
	}
	if err := a.cat.UpsertGalleryItem(item); err != nil {
		return err
	}
	fmt.Printf("gallery item saved: %s\n", item.ID)
	return nil
}

func (a *app) galleryRemove(args []string) error {
	fs := flag.NewFlagSet("gallery-rm", flag.ContinueOnError)
	id := fs.String("id", "", "item id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	removed, err := a.cat.RemoveGalleryItem(*id)
	if err != nil {
		return err
	}
	if removed {
		fmt.Println("gallery item deleted")
	} else {
		fmt.Println("gallery item not found")
	}
	return nil
}

func (a *app) qrShow() error {
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	qr, err := a.cat.QRCodes()
	if err != nil {
		return err
	}
	show := func(label string, v *string) {
		if v == nil {
			fmt.Printf("%s: not set\n", label)
		} else {
			fmt.Printf("%s: %d bytes encoded\n", label, len(*v))
		}
	}
	show("portrait", qr.Portrait)
	show("landscape", qr.Landscape)
	return nil
}

func (a *app) qrSet(args []string) error {
	fs := flag.NewFlagSet("qr-set", flag.ContinueOnError)
	portrait := fs.String("portrait", "", "path to portrait QR image")
	landscape := fs.String("landscape", "", "path to landscape QR image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	qr, err := a.cat.QRCodes()
	if err != nil {
		return err
	}
	if *portrait != "" {
		encoded, err := ident.EncodeImage(*portrait)
		if err != nil {
			return err
		}
		qr.Portrait = &encoded
	}
	if *landscape != "" {
		encoded, err := ident.EncodeImage(*landscape)
		if err != nil {
			return err
		}
		qr.Landscape = &encoded
	}
	if err := a.cat.SaveQRCodes(qr); err != nil {
		return err
	}
	fmt.Println("qr codes saved")
	return nil
}
