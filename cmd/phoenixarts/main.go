package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"phoenixarts/internal/catalog"
	"phoenixarts/internal/changelog"
	"phoenixarts/internal/config"
	"phoenixarts/internal/kv"
	"phoenixarts/internal/metrics"
	"phoenixarts/internal/session"
)

const journalFile = "store.jsonl"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cfg := config.Load()
	if err := run(cfg, os.Args[1], os.Args[2:]); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: phoenixarts <command> [flags]

visitor:   signup login logout whoami submit home gallery page
admin:     admin-login admin-logout orders order edit-order delete-order
           gallery-put gallery-rm qr qr-set users stats
maintain:  snapshot restore`)
}

// app wires the store, catalog and session gate for one command invocation.
// raw is the undecorated store: snapshot and restore work against it so that
// replayed mutations are not journaled again.
type app struct {
	cfg   config.Config
	raw   kv.Store
	store kv.Store
	cat   *catalog.Catalog
	sess  *session.Manager
	mreg  *metrics.Registry
}

func run(cfg config.Config, cmd string, args []string) error {
	raw, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer raw.Close()

	mreg := metrics.NewRegistry()
	var journal changelog.Writer
	if cfg.ChangelogOn {
		fw, err := changelog.NewFileWriter(cfg.ChangelogDir, journalFile)
		if err != nil {
			return err
		}
		journal = fw
	}
	store := kv.NewLogged(raw, journal, mreg)
	cat := catalog.New(store, mreg, catalog.Options{PriceAtCreation: cfg.PriceAtCreation})
	sess := session.NewManager(cat, session.AdminCreds{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}, mreg)

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", mreg.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logrus.WithError(err).Warn("metrics listener stopped")
			}
		}()
	}

	a := &app{cfg: cfg, raw: raw, store: store, cat: cat, sess: sess, mreg: mreg}
	switch cmd {
	case "signup":
		return a.signup(args)
	case "login":
		return a.login(args)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami()
	case "admin-login":
		return a.adminLogin(args)
	case "admin-logout":
		return a.adminLogout()
	case "submit":
		return a.submit(args)
	case "home":
		return a.home()
	case "gallery":
		return a.gallery()
	case "gallery-put":
		return a.galleryPut(args)
	case "gallery-rm":
		return a.galleryRemove(args)
	case "orders":
		return a.orders(args)
	case "order":
		return a.orderView(args)
	case "edit-order":
		return a.editOrder(args)
	case "delete-order":
		return a.deleteOrder(args)
	case "qr":
		return a.qrShow()
	case "qr-set":
		return a.qrSet(args)
	case "users":
		return a.users(args)
	case "stats":
		return a.stats()
	case "page":
		return a.page(args)
	case "snapshot":
		return a.snapshot()
	case "restore":
		return a.restore()
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func openStore(cfg config.Config) (kv.Store, error) {
	switch cfg.Backend {
	case "memory":
		return kv.NewMemory(), nil
	case "badger":
		return kv.NewBadger(filepath.Join(cfg.DataDir, "badger"))
	case "pebble":
		return kv.NewPebble(filepath.Join(cfg.DataDir, "pebble"))
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// gate runs the page-load access decision before a command produces any
// output, honoring the redirect the way a page would.
func (a *app) gate(page session.PageClass) (bool, error) {
	d, err := a.sess.Authorize(page)
	if err != nil {
		return false, err
	}
	if d != session.Stay {
		fmt.Printf("redirect -> %s\n", d)
		return false, nil
	}
	return true, nil
}
