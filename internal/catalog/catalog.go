package catalog

import (
	"errors"

	"phoenixarts/internal/kv"
	"phoenixarts/internal/metrics"
)

// Storage keys. Each key holds one whole JSON-encoded collection or record;
// every mutation re-reads and rewrites the full value.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyIsAdmin     = "isAdmin"
	KeyOrders      = "artOrders"
	KeyGallery     = "artGallery"
	KeyQRCodes     = "qrCodes"
)

type Options struct {
	// PriceAtCreation prices an order at submission time instead of leaving
	// it unpriced until its first admin edit. Off by default: new orders
	// historically carry no price until an admin touches them.
	PriceAtCreation bool
}

// Catalog is the typed access layer over the store. It holds no entity state
// between calls: every operation re-reads the store, so each call sees the
// latest committed value.
type Catalog struct {
	store kv.Store
	mreg  *metrics.Registry
	opts  Options
}

// New builds a catalog over store. mreg may be nil.
func New(store kv.Store, mreg *metrics.Registry, opts Options) *Catalog {
	return &Catalog{store: store, mreg: mreg, opts: opts}
}

func (c *Catalog) countDecode(err error) error {
	var de *kv.DecodeError
	if errors.As(err, &de) && c.mreg != nil {
		c.mreg.DecodeFailures.Inc()
	}
	return err
}
