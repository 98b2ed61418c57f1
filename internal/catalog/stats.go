package catalog

// Stats are the admin dashboard headline figures.
type Stats struct {
	Users        int
	Orders       int
	GalleryItems int
	QRConfigured bool
}

func (c *Catalog) Stats() (Stats, error) {
	var s Stats
	users, err := c.Users()
	if err != nil {
		return Stats{}, err
	}
	orders, err := c.Orders()
	if err != nil {
		return Stats{}, err
	}
	gallery, err := c.Gallery()
	if err != nil {
		return Stats{}, err
	}
	qr, err := c.QRCodes()
	if err != nil {
		return Stats{}, err
	}
	s.Users = len(users)
	s.Orders = len(orders)
	s.GalleryItems = len(gallery)
	s.QRConfigured = qr.Portrait != nil || qr.Landscape != nil
	return s, nil
}
