package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"phoenixarts/internal/ident"
	"phoenixarts/internal/session"
	"phoenixarts/internal/snapshot"
)

func (a *app) users(args []string) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	q := fs.String("q", "", "search term (name or username)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	users, err := a.cat.SearchUsers(*q)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("no users found")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%-15s %-20s %-8s %3d  %s\n",
			u.Username, u.Name, u.Gender, u.Age, ident.FormatDate(u.SignupDate))
	}
	return nil
}

func (a *app) stats() error {
	ok, err := a.gate(session.PageAdmin)
	if err != nil || !ok {
		return err
	}
	s, err := a.cat.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("users:         %d\n", s.Users)
	fmt.Printf("orders:        %d\n", s.Orders)
	fmt.Printf("gallery items: %d\n", s.GalleryItems)
	fmt.Printf("qr configured: %v\n", s.QRConfigured)
	return nil
}

// snapshot and restore are maintenance commands; they run against the raw
// store so the replayed mutations are not journaled a second time.

func (a *app) snapshot() error {
	id := "snap-" + time.Now().UTC().Format("20060102-150405")
	snapper := snapshot.NewFilesystemSnapshotter(a.cfg.SnapshotDir)
	if err := snapper.WriteSnapshot(id, a.raw); err != nil {
		return err
	}
	lines, err := snapshot.CountChangelogLines(filepath.Join(a.cfg.ChangelogDir, journalFile))
	if err != nil {
		return err
	}
	mani := snapshot.NewFilesystemManifest(a.cfg.SnapshotDir)
	if err := mani.PublishLatest(id, lines); err != nil {
		return err
	}
	a.mreg.SnapshotAgeSec.Set(0)
	logrus.WithFields(logrus.Fields{"snapshot": id, "changelogLines": lines}).Info("snapshot written")
	fmt.Printf("snapshot written: %s\n", id)
	return nil
}

func (a *app) restore() error {
	mani := snapshot.NewFilesystemManifest(a.cfg.SnapshotDir)
	r := snapshot.NewRestorer(a.raw, mani, a.cfg.SnapshotDir)
	res, err := r.RestoreAndReplay(filepath.Join(a.cfg.ChangelogDir, journalFile))
	if err != nil {
		return err
	}
	fmt.Printf("restore complete: %d replayed, %d already in snapshot\n", res.Applied, res.Skipped)
	return nil
}
