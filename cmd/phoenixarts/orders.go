package main

import (
	"flag"
	"fmt"
	"time"

	"phoenixarts/internal/catalog"
	"phoenixarts/internal/ident"
	"phoenixarts/internal/model"
	"phoenixarts/internal/session"
)

func (a *app) submit(args []string) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	name := fs.String("name", "", "customer name")
	gender := fs.String("gender", "", "gender")
	phone := fs.String("phone", "", "phone digits (national prefix added)")
	sheet := fs.String("sheet", model.SheetA4, "sheet size")
	position := fs.String("position", string(model.PositionPortrait), "art position: Portrait|Landscape")
	members := fs.String("members", "", "which members")
	frames := fs.String("frames", model.WithoutFrame, "frame choice")
	image := fs.String("image", "", "path to reference image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageRegular)
	if err != nil || !ok {
		return err
	}

	o := model.Order{
		ID:           ident.NewID(),
		Name:         *name,
		Gender:       *gender,
		Phone:        model.NormalizePhone(*phone, a.cfg.PhonePrefix),
		SheetSize:    *sheet,
		ArtPosition:  model.ArtPosition(*position),
		WhichMembers: *members,
		Frames:       *frames,
		Status:       model.StatusSubmitted,
		Date:         time.Now().UTC(),
	}
	if *image != "" {
		encoded, err := ident.EncodeImage(*image)
		if err != nil {
			return err
		}
		o.Image = encoded
	}
	created, err := a.cat.CreateOrder(o)
	if err != nil {
		return err
	}
	fmt.Printf("order submitted: %s\n", created.ID)
	return nil
}

func (a *app) orders(args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	q := fs.String("q", "", "search term (name, phone or id)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	orders, err := a.cat.SearchOrders(*q)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("no orders found")
		return nil
	}
	for _, o := range orders {
		d := o.WithDisplayDefaults()
		prize := "-"
		if o.ArtPrize > 0 {
			prize = fmt.Sprintf("₹%d", o.ArtPrize)
		}
		fmt.Printf("%s  %-20s %-15s %-4s %-10s %-6s %-12s %s\n",
			d.ID, d.Name, d.Phone, d.SheetSize, d.ArtPosition, prize, d.Status, ident.FormatDate(o.Date))
	}
	return nil
}

func (a *app) orderView(args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	id := fs.String("id", "", "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	o, found, err := a.cat.FindOrder(*id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("order not found")
		return nil
	}
	d := o.WithDisplayDefaults()
	fmt.Printf("Order ID:      %s\n", d.ID)
	fmt.Printf("Date:          %s\n", ident.FormatDate(o.Date))
	fmt.Printf("Name:          %s\n", d.Name)
	fmt.Printf("Gender:        %s\n", d.Gender)
	fmt.Printf("Phone:         %s\n", d.Phone)
	fmt.Printf("Sheet Size:    %s\n", d.SheetSize)
	fmt.Printf("Position:      %s\n", d.ArtPosition)
	fmt.Printf("Which Members: %s\n", d.WhichMembers)
	fmt.Printf("Frames:        %s\n", d.Frames)
	fmt.Printf("Status:        %s\n", d.Status)
	if o.ArtPrize > 0 {
		fmt.Printf("Prize:         ₹%d\n", o.ArtPrize)
	}
	if o.Image != "" {
		fmt.Printf("Image:         %d bytes encoded\n", len(o.Image))
	} else {
		fmt.Println("Image:         none uploaded")
	}
	return nil
}

func (a *app) editOrder(args []string) error {
	fs := flag.NewFlagSet("edit-order", flag.ContinueOnError)
	id := fs.String("id", "", "order id")
	name := fs.String("name", "", "customer name (empty keeps current)")
	gender := fs.String("gender", "", "gender (empty keeps current)")
	phone := fs.String("phone", "", "phone, stored verbatim (empty keeps current)")
	sheet := fs.String("sheet", "", "sheet size (empty keeps current)")
	position := fs.String("position", "", "art position (empty keeps current)")
	status := fs.String("status", "", "order status (empty keeps current)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	cur, found, err := a.cat.FindOrder(*id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("order not found")
		return nil
	}
	edit := catalog.OrderEdit{
		Name:        pick(*name, cur.Name),
		Gender:      pick(*gender, cur.Gender),
		Phone:       pick(*phone, cur.Phone),
		SheetSize:   pick(*sheet, cur.SheetSize),
		ArtPosition: model.ArtPosition(pick(*position, string(cur.ArtPosition))),
		Status:      pick(*status, cur.Status),
	}
	updated, found, err := a.cat.EditOrder(*id, edit)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("order not found")
		return nil
	}
	fmt.Printf("order %s updated, prize ₹%d\n", updated.ID, updated.ArtPrize)
	return nil
}

func (a *app) deleteOrder(args []string) error {
	fs := flag.NewFlagSet("delete-order", flag.ContinueOnError)
	id := fs.String("id", "", "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	removed, err := a.cat.RemoveOrder(*id)
	if err != nil {
		return err
	}
	if removed {
		fmt.Println("order deleted")
	} else {
		fmt.Println("order not found")
	}
	return nil
}

func pick(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
