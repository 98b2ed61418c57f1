package kv

import (
	"time"

	"phoenixarts/internal/changelog"
	"phoenixarts/internal/metrics"
)

// Logged wraps a Store, journaling every committed mutation and counting
// operations. The journal is what a multi-process deployment would subscribe
// to in order to refresh its view of the store.
type Logged struct {
	inner   Store
	journal changelog.Writer
	mreg    *metrics.Registry
}

// NewLogged decorates s. Both journal and mreg may be nil.
func NewLogged(s Store, journal changelog.Writer, mreg *metrics.Registry) *Logged {
	return &Logged{inner: s, journal: journal, mreg: mreg}
}

func (l *Logged) Get(key string) ([]byte, bool, error) {
	if l.mreg != nil {
		l.mreg.StoreReads.Inc()
	}
	return l.inner.Get(key)
}

func (l *Logged) Set(key string, value []byte) error {
	if err := l.inner.Set(key, value); err != nil {
		return err
	}
	if l.mreg != nil {
		l.mreg.StoreWrites.Inc()
	}
	return l.append(changelog.Entry{
		Key:   key,
		Op:    changelog.OpSet,
		Value: append([]byte(nil), value...),
		TS:    time.Now().UTC().Unix(),
	})
}

func (l *Logged) Delete(key string) error {
	if err := l.inner.Delete(key); err != nil {
		return err
	}
	if l.mreg != nil {
		l.mreg.StoreDeletes.Inc()
	}
	return l.append(changelog.Entry{
		Key: key,
		Op:  changelog.OpDelete,
		TS:  time.Now().UTC().Unix(),
	})
}

func (l *Logged) append(e changelog.Entry) error {
	if l.journal == nil {
		return nil
	}
	if err := l.journal.Append(e); err != nil {
		return err
	}
	if l.mreg != nil {
		l.mreg.ChangelogAppended.Inc()
	}
	return nil
}

func (l *Logged) Range(fn func(key string, value []byte) error) error { return l.inner.Range(fn) }
func (l *Logged) LoadAll(all map[string][]byte) error                 { return l.inner.LoadAll(all) }
func (l *Logged) Close() error                                        { return l.inner.Close() }
