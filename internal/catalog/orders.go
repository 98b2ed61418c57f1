package catalog

import (
	"strings"

	"phoenixarts/internal/kv"
	"phoenixarts/internal/model"
)

// Orders returns the full collection in stored (insertion) order.
func (c *Catalog) Orders() ([]model.Order, error) {
	orders, err := kv.LoadJSON(c.store, KeyOrders, []model.Order(nil))
	if err != nil {
		return nil, c.countDecode(err)
	}
	return orders, nil
}

func (c *Catalog) SaveOrders(orders []model.Order) error {
	return kv.SaveJSON(c.store, KeyOrders, orders)
}

// CreateOrder appends a submission. The status defaults to Submitted; the
// price is left unset unless PriceAtCreation is on.
func (c *Catalog) CreateOrder(o model.Order) (model.Order, error) {
	if o.Status == "" {
		o.Status = model.StatusSubmitted
	}
	if c.opts.PriceAtCreation {
		o.ArtPrize = model.PriceFor(o.ArtPosition)
	}
	orders, err := c.Orders()
	if err != nil {
		return model.Order{}, err
	}
	if err := c.SaveOrders(append(orders, o)); err != nil {
		return model.Order{}, err
	}
	if c.mreg != nil {
		c.mreg.OrdersSubmitted.Inc()
	}
	return o, nil
}

func (c *Catalog) FindOrder(id string) (model.Order, bool, error) {
	orders, err := c.Orders()
	if err != nil {
		return model.Order{}, false, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

// OrderEdit carries the admin-editable fields. Members, frames and the image
// are not touched by the edit path.
type OrderEdit struct {
	Name        string
	Gender      string
	Phone       string
	SheetSize   string
	ArtPosition model.ArtPosition
	Status      string
}

// EditOrder applies an admin edit in place and recomputes the price from the
// new position. An unknown id is a no-op reported via found=false.
func (c *Catalog) EditOrder(id string, e OrderEdit) (model.Order, bool, error) {
	orders, err := c.Orders()
	if err != nil {
		return model.Order{}, false, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Name = e.Name
		orders[i].Gender = e.Gender
		orders[i].Phone = e.Phone
		orders[i].SheetSize = e.SheetSize
		orders[i].ArtPosition = e.ArtPosition
		orders[i].Status = e.Status
		orders[i].ArtPrize = model.PriceFor(e.ArtPosition)
		if err := c.SaveOrders(orders); err != nil {
			return model.Order{}, false, err
		}
		return orders[i], true, nil
	}
	return model.Order{}, false, nil
}

// RemoveOrder filters the order out. Removing an absent id is a no-op, not
// an error.
func (c *Catalog) RemoveOrder(id string) (bool, error) {
	orders, err := c.Orders()
	if err != nil {
		return false, err
	}
	out := orders[:0:0]
	removed := false
	for _, o := range orders {
		if o.ID == id {
			removed = true
			continue
		}
		out = append(out, o)
	}
	if !removed {
		return false, nil
	}
	return true, c.SaveOrders(out)
}

// SearchOrders matches name and id case-insensitively and the phone as a
// plain substring; matches are OR'd. An empty term returns everything.
func (c *Catalog) SearchOrders(term string) ([]model.Order, error) {
	orders, err := c.Orders()
	if err != nil {
		return nil, err
	}
	if term == "" {
		return orders, nil
	}
	needle := strings.ToLower(term)
	var out []model.Order
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.Name), needle) ||
			strings.Contains(o.Phone, term) ||
			strings.Contains(strings.ToLower(o.ID), needle) {
			out = append(out, o)
		}
	}
	return out, nil
}
