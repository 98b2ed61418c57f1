package catalog

import (
	"phoenixarts/internal/kv"
	"phoenixarts/internal/model"
)

// QRCodes returns the singleton payment-QR record; both slots default to
// unset.
func (c *Catalog) QRCodes() (model.QRAssets, error) {
	qr, err := kv.LoadJSON(c.store, KeyQRCodes, model.QRAssets{})
	if err != nil {
		return model.QRAssets{}, c.countDecode(err)
	}
	return qr, nil
}

// SaveQRCodes replaces the whole record.
func (c *Catalog) SaveQRCodes(qr model.QRAssets) error {
	return kv.SaveJSON(c.store, KeyQRCodes, qr)
}
