package catalog

import (
	"phoenixarts/internal/kv"
	"phoenixarts/internal/model"
)

// homeGalleryLimit is how many pieces the home page strip shows.
const homeGalleryLimit = 6

// Gallery returns the full collection in stored order.
func (c *Catalog) Gallery() ([]model.GalleryItem, error) {
	gallery, err := kv.LoadJSON(c.store, KeyGallery, []model.GalleryItem(nil))
	if err != nil {
		return nil, c.countDecode(err)
	}
	return gallery, nil
}

func (c *Catalog) SaveGallery(gallery []model.GalleryItem) error {
	return kv.SaveJSON(c.store, KeyGallery, gallery)
}

// UpsertGalleryItem replaces the item with the same id in place, preserving
// its position; a new id is appended.
func (c *Catalog) UpsertGalleryItem(item model.GalleryItem) error {
	gallery, err := c.Gallery()
	if err != nil {
		return err
	}
	for i := range gallery {
		if gallery[i].ID == item.ID {
			gallery[i] = item
			return c.SaveGallery(gallery)
		}
	}
	return c.SaveGallery(append(gallery, item))
}

func (c *Catalog) FindGalleryItem(id string) (model.GalleryItem, bool, error) {
	gallery, err := c.Gallery()
	if err != nil {
		return model.GalleryItem{}, false, err
	}
	for _, g := range gallery {
		if g.ID == id {
			return g, true, nil
		}
	}
	return model.GalleryItem{}, false, nil
}

// RemoveGalleryItem filters the item out; absent ids are a no-op.
func (c *Catalog) RemoveGalleryItem(id string) (bool, error) {
	gallery, err := c.Gallery()
	if err != nil {
		return false, err
	}
	out := gallery[:0:0]
	removed := false
	for _, g := range gallery {
		if g.ID == id {
			removed = true
			continue
		}
		out = append(out, g)
	}
	if !removed {
		return false, nil
	}
	return true, c.SaveGallery(out)
}

// HomeGallery returns the first items in stored order, not by parsed date.
func (c *Catalog) HomeGallery() ([]model.GalleryItem, error) {
	gallery, err := c.Gallery()
	if err != nil {
		return nil, err
	}
	if len(gallery) > homeGalleryLimit {
		gallery = gallery[:homeGalleryLimit]
	}
	return gallery, nil
}
